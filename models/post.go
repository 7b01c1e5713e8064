package models

import "time"

const (
	PostTypePost     = "post"
	PostTypeQuestion = "question"
)

type Post struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	ImageURL      string    `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	PostType      string    `gorm:"column:post_type;type:varchar(16);not null;default:post" json:"post_type"`
	RewardCredits int64     `gorm:"column:reward_credits;not null;default:0" json:"reward_credits"`
	AuthorID      uint64    `gorm:"column:author_id;not null;index:idx_posts_author_id" json:"author_id"`
	LikesCount    int64     `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CommentsCount int64     `gorm:"column:comments_count;not null;default:0" json:"comments_count"`
	CreatedAt     time.Time `gorm:"column:created_at;index:idx_posts_created_at" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
