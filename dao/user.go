package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IncrCredits 原子增加积分，返回受影响行数（0 表示用户不存在）
func (u *Users) IncrCredits(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := u.Conn(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount))
	return result.RowsAffected, result.Error
}

func (u *Users) GetCredits(ctx context.Context, userID uint64) (int64, error) {
	var credits int64
	err := u.Conn(ctx).Model(&models.User{}).
		Select("credits").
		Where("id = ?", userID).
		Scan(&credits).Error
	return credits, err
}

// TopByCredits 积分排行
func (u *Users) TopByCredits(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := u.Conn(ctx).
		Order("credits DESC").
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// CountAbove 积分高于 credits 的用户数，用于计算排名
func (u *Users) CountAbove(ctx context.Context, credits int64) (int64, error) {
	var count int64
	err := u.Conn(ctx).Model(&models.User{}).
		Where("credits > ?", credits).
		Count(&count).Error
	return count, err
}

// FindByIDs 批量查询，返回 id -> user
func (u *Users) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	result := make(map[uint64]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.User
	if err := u.Conn(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}
