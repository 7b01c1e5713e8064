package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// List 按发布时间倒序分页
func (d *NoteDAO) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Conn(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	return notes, err
}

// CountByAuthor 作者笔记总数
func (d *NoteDAO) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := d.Conn(ctx).Model(&models.Note{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// IncrLikeCount 点赞计数增减，避免负数
func (d *NoteDAO) IncrLikeCount(ctx context.Context, noteID uint64, delta int64) error {
	_, err := incrCounter(d.Conn(ctx), &models.Note{}, noteID, "likes_count", delta)
	return err
}

func (d *NoteDAO) IncrCommentCount(ctx context.Context, noteID uint64, delta int64) error {
	_, err := incrCounter(d.Conn(ctx), &models.Note{}, noteID, "comments_count", delta)
	return err
}

func (d *NoteDAO) IncrDownloadCount(ctx context.Context, noteID uint64) error {
	_, err := incrCounter(d.Conn(ctx), &models.Note{}, noteID, "downloads_count", 1)
	return err
}
