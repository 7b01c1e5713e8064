package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Point struct {
	Repo[models.CreditLog]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.CreditLog](db),
	}
}

// InsertLog 写入积分流水，(user_id, change_type, source_id) 已存在则不写；返回是否插入
func (p *Point) InsertLog(ctx context.Context, log *models.CreditLog) (bool, error) {
	result := p.Conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(log)
	if result.Error != nil {
		if IsDupKeyErr(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (p *Point) UpdateLogBalance(ctx context.Context, logID uint64, balance int64) error {
	return p.Conn(ctx).Model(&models.CreditLog{}).
		Where("id = ?", logID).
		UpdateColumn("balance", balance).Error
}

// SumByUser 流水合计，用于对账
func (p *Point) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	err := p.Conn(ctx).Model(&models.CreditLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}

// ListRecords 游标分页查询
func (p *Point) ListRecords(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.CreditLog, error) {
	var logs []models.CreditLog
	query := p.Conn(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
