package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByTarget 目标下的评论(按时间倒序)
func (d *Comment) ListByTarget(ctx context.Context, kind models.TargetKind, targetID uint64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Conn(ctx).
		Where(kind.Column()+" = ?", targetID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
