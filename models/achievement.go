package models

import "time"

// 成就类型
const (
	AchievementFirstNote    = "first_note"
	AchievementHundredLikes = "100_likes"
)

// Achievement 成就解锁记录，同一用户同一类型只能解锁一次
type Achievement struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_achievements_user_type,priority:1" json:"user_id"`
	Type           string    `gorm:"column:type;type:varchar(32);not null;uniqueIndex:uk_achievements_user_type,priority:2" json:"type"`
	Title          string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description    string    `gorm:"column:description;type:varchar(255)" json:"description"`
	CreditsAwarded int64     `gorm:"column:credits_awarded;not null;default:0" json:"credits_awarded"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}
