package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CommentItem struct {
	ID        uint64      `json:"id,string"`
	Content   string      `json:"content"`
	Author    *AuthorInfo `json:"author,omitempty"`
	NoteID    uint64      `json:"note_id,string,omitempty"`
	PostID    uint64      `json:"post_id,string,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
