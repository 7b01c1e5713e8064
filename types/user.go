package types

import (
	"StudyHub/models"
	"time"
)

// UserInfo 对外展示的用户信息，不含密码
type UserInfo struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name"`
	Career    string    `json:"career"`
	Avatar    string    `json:"avatar"`
	Credits   int64     `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorInfo 列表中的作者摘要
type AuthorInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Career:    u.Career,
		Avatar:    u.Avatar,
		Credits:   u.Credits,
		CreatedAt: u.CreatedAt,
	}
}

func NewAuthorInfo(u *models.User) *AuthorInfo {
	if u == nil {
		return nil
	}
	return &AuthorInfo{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// UserStats 个人主页统计
type UserStats struct {
	NotesCount    int64 `json:"notes_count"`
	LikesReceived int64 `json:"likes_received"`
	Rank          int64 `json:"rank"` // 1 + 积分更高的人数
	Credits       int64 `json:"credits"`
}

type AchievementItem struct {
	ID             uint64    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreditsAwarded int64     `json:"credits_awarded"`
	CreatedAt      time.Time `json:"created_at"`
}

// LeaderboardItem 排行榜条目
type LeaderboardItem struct {
	Rank     int    `json:"rank"`
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
	Credits  int64  `json:"credits"`
}
