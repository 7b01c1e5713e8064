package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

func newLike(kind models.TargetKind, targetID, userID uint64) *models.Like {
	item := &models.Like{UserID: userID}
	id := targetID
	if kind == models.TargetPost {
		item.PostID = &id
	} else {
		item.NoteID = &id
	}
	return item
}

// Insert 写入点赞记录，唯一键冲突时不做任何事；返回是否真正插入
func (d *LikeDAO) Insert(ctx context.Context, kind models.TargetKind, targetID, userID uint64) (bool, error) {
	result := d.Conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(newLike(kind, targetID, userID))
	if result.Error != nil {
		if IsDupKeyErr(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除点赞记录，返回删除条数
func (d *LikeDAO) Delete(ctx context.Context, kind models.TargetKind, targetID, userID uint64) (int64, error) {
	result := d.Conn(ctx).
		Where("user_id = ? AND "+kind.Column()+" = ?", userID, targetID).
		Delete(&models.Like{})
	return result.RowsAffected, result.Error
}

// IsLiked 是否点赞
func (d *LikeDAO) IsLiked(ctx context.Context, kind models.TargetKind, targetID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND "+kind.Column()+" = ?", userID, targetID)
}

// CountByTarget 目标的真实点赞数
func (d *LikeDAO) CountByTarget(ctx context.Context, kind models.TargetKind, targetID uint64) (int64, error) {
	var count int64
	err := d.Conn(ctx).Model(&models.Like{}).
		Where(kind.Column()+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// BatchIsLiked 批量检查点赞状态
func (d *LikeDAO) BatchIsLiked(ctx context.Context, kind models.TargetKind, targetIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(targetIDs) == 0 || userID == 0 {
		return result, nil
	}

	var likes []*models.Like
	err := d.Conn(ctx).
		Where("user_id = ? AND "+kind.Column()+" IN ?", userID, targetIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		switch {
		case like.NoteID != nil && kind == models.TargetNote:
			result[*like.NoteID] = true
		case like.PostID != nil && kind == models.TargetPost:
			result[*like.PostID] = true
		}
	}
	return result, nil
}

// CountReceivedOnNotes 用户所有笔记收到的点赞数
func (d *LikeDAO) CountReceivedOnNotes(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := d.Conn(ctx).Model(&models.Like{}).
		Joins("JOIN notes ON notes.id = likes.note_id").
		Where("notes.author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
