package models

import (
	"time"
)

// Comment 评论，post_id / note_id 二选一
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_comments_author_id" json:"author_id"`
	PostID    *uint64   `gorm:"column:post_id;index:idx_comments_post_id" json:"post_id,omitempty"`
	NoteID    *uint64   `gorm:"column:note_id;index:idx_comments_note_id" json:"note_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定 GORM 使用的表名
func (Comment) TableName() string {
	return "comments"
}
