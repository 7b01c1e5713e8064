package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementDAO struct {
	Repo[models.Achievement]
}

func NewAchievementDAO(db *gorm.DB) *AchievementDAO {
	return &AchievementDAO{Repo: NewRepo[models.Achievement](db)}
}

// Insert 写入成就，同一用户同类型已存在时不写；返回是否新解锁
func (d *AchievementDAO) Insert(ctx context.Context, item *models.Achievement) (bool, error) {
	result := d.Conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item)
	if result.Error != nil {
		if IsDupKeyErr(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUser 最近解锁的成就
func (d *AchievementDAO) ListByUser(ctx context.Context, userID uint64, limit int) ([]*models.Achievement, error) {
	var items []*models.Achievement
	err := d.Conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *AchievementDAO) FindByUserType(ctx context.Context, userID uint64, achievementType string) (*models.Achievement, error) {
	return d.FindByWhere(ctx, "user_id = ? AND type = ?", userID, achievementType)
}
