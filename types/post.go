package types

import "time"

type CreatePostRequest struct {
	Content       string `json:"content" binding:"required,max=5000"`
	ImageURL      string `json:"image_url" binding:"max=512"`
	PostType      string `json:"post_type" binding:"omitempty,oneof=post question"`
	RewardCredits int64  `json:"reward_credits" binding:"gte=0"`
}

type PostItem struct {
	ID            uint64      `json:"id,string"`
	Content       string      `json:"content"`
	ImageURL      string      `json:"image_url"`
	PostType      string      `json:"post_type"`
	RewardCredits int64       `json:"reward_credits"`
	LikesCount    int64       `json:"likes_count"`
	CommentsCount int64       `json:"comments_count"`
	IsLiked       bool        `json:"is_liked"`
	Author        *AuthorInfo `json:"author,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// UploadImageResponse 帖子配图上传结果
type UploadImageResponse struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}
