package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultNoteCredits int64 = 50

type Note struct {
	ID             uint64                      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title          string                      `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description    string                      `gorm:"column:description;type:text" json:"description"`
	Subject        string                      `gorm:"column:subject;type:varchar(100);not null" json:"subject"`
	FilePath       string                      `gorm:"column:file_path;type:varchar(255);not null" json:"file_path"`
	FileName       string                      `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FileSize       int64                       `gorm:"column:file_size" json:"file_size"`
	Tags           datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	AuthorID       uint64                      `gorm:"column:author_id;not null;index:idx_notes_author_id" json:"author_id"`
	LikesCount     int64                       `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CommentsCount  int64                       `gorm:"column:comments_count;not null;default:0" json:"comments_count"`
	DownloadsCount int64                       `gorm:"column:downloads_count;not null;default:0" json:"downloads_count"`
	CreditsAwarded int64                       `gorm:"column:credits_awarded;not null;default:50" json:"credits_awarded"`
	CreatedAt      time.Time                   `gorm:"column:created_at;index:idx_notes_created_at" json:"created_at"`
}

func (Note) TableName() string {
	return "notes"
}
