package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Email     string    `gorm:"column:email;type:varchar(255)" json:"email"`
	FullName  string    `gorm:"column:full_name;type:varchar(128)" json:"full_name"`
	Career    string    `gorm:"column:career;type:varchar(128)" json:"career"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255)" json:"avatar"`
	Credits   int64     `gorm:"column:credits;not null;default:0;index:idx_users_credits" json:"credits"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
