package models

import "time"

// 积分变动类型常量定义，目前只有收入类
const (
	CreditSignup      = 1 // 注册赠送
	CreditNoteUpload  = 2 // 上传笔记
	CreditAchievement = 3 // 成就奖励
)

// CreditLog 积分流水，user_id + change_type + source_id 唯一，保证同一业务只入账一次
type CreditLog struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_credit_logs_user_source,priority:1"`
	Amount     int64     `gorm:"column:amount;not null"`  // 变动数额
	Balance    int64     `gorm:"column:balance;not null"` // 变动后余额
	ChangeType int8      `gorm:"column:change_type;not null;uniqueIndex:uk_credit_logs_user_source,priority:2"`
	SourceID   string    `gorm:"column:source_id;size:64;not null;uniqueIndex:uk_credit_logs_user_source,priority:3"`
	Remark     string    `gorm:"column:remark;size:255"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CreditLog) TableName() string {
	return "credit_logs"
}
