package types

import (
	"io"
	"time"
)

// Pagination 分页常量
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize 修正分页参数
func (r *ListReq) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultPageSize
	}
	if r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// CreateNoteRequest 上传笔记的表单字段，文件单独读取
type CreateNoteRequest struct {
	Title       string   `form:"title" binding:"required,max=200"`
	Description string   `form:"description" binding:"max=2000"`
	Subject     string   `form:"subject" binding:"required,max=100"`
	Tags        []string `form:"-"`
}

// FileUpload 上传的文件内容
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type NoteItem struct {
	ID             uint64      `json:"id,string"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Subject        string      `json:"subject"`
	FileName       string      `json:"file_name"`
	FileSize       int64       `json:"file_size"`
	FileURL        string      `json:"file_url"`
	Tags           []string    `json:"tags"`
	LikesCount     int64       `json:"likes_count"`
	CommentsCount  int64       `json:"comments_count"`
	DownloadsCount int64       `json:"downloads_count"`
	CreditsAwarded int64       `json:"credits_awarded"`
	IsLiked        bool        `json:"is_liked"`
	Author         *AuthorInfo `json:"author,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// CreateNoteResponse 上传成功返回笔记以及本次获得的积分/成就
type CreateNoteResponse struct {
	Note         *NoteItem         `json:"note"`
	Credits      int64             `json:"credits"` // 作者当前积分
	Achievements []AchievementItem `json:"achievements"`
}

type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
