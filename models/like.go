package models

import "time"

// Like 点赞记录
// 对应表 likes，note_id / post_id 二选一
// 唯一键: user_id + note_id, user_id + post_id（NULL 不参与唯一性比较）
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_note,priority:1;uniqueIndex:uk_likes_user_post,priority:1" json:"user_id"`
	NoteID    *uint64   `gorm:"column:note_id;uniqueIndex:uk_likes_user_note,priority:2;index:idx_likes_note_id" json:"note_id,omitempty"`
	PostID    *uint64   `gorm:"column:post_id;uniqueIndex:uk_likes_user_post,priority:2;index:idx_likes_post_id" json:"post_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// TargetKind 点赞/评论的目标类型
type TargetKind string

const (
	TargetNote TargetKind = "note"
	TargetPost TargetKind = "post"
)

// Column likes / comments 表中对应的外键列
func (k TargetKind) Column() string {
	if k == TargetPost {
		return "post_id"
	}
	return "note_id"
}

func (k TargetKind) Valid() bool {
	return k == TargetNote || k == TargetPost
}
