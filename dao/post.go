package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Conn(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (d *PostDAO) IncrLikeCount(ctx context.Context, postID uint64, delta int64) error {
	_, err := incrCounter(d.Conn(ctx), &models.Post{}, postID, "likes_count", delta)
	return err
}

func (d *PostDAO) IncrCommentCount(ctx context.Context, postID uint64, delta int64) error {
	_, err := incrCounter(d.Conn(ctx), &models.Post{}, postID, "comments_count", delta)
	return err
}
