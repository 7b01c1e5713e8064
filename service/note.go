package service

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/filestore"
	"StudyHub/pkg/log"
	"StudyHub/types"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 笔记允许的文件类型
var noteExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	CreateNote(ctx context.Context, authorID uint64, req *types.CreateNoteRequest, file *types.FileUpload) (*types.CreateNoteResponse, error)
	ListNotes(ctx context.Context, req *types.ListReq, viewerID uint64) ([]*types.NoteItem, error)
	GetNote(ctx context.Context, noteID uint64, viewerID uint64) (*types.NoteItem, error)
	// Download 下载计数 +1 并返回文件内容，调用方负责关闭
	Download(ctx context.Context, noteID uint64) (*models.Note, io.ReadCloser, error)
}

type NoteService struct {
	StorageConf *config.StorageConfig
	Store       filestore.Store
	NoteDAO     *dao.NoteDAO
	UserDAO     *dao.Users
	LikeService ILikeService
	Ledger      ILedgerService
}

// NoteObjectKey 存储路径 notes/YYYY/MM/DD/<uuid><ext>
func NoteObjectKey(now time.Time, ext string) string {
	return fmt.Sprintf("notes/%s/%s%s", now.Format("2006/01/02"), uuid.NewString(), ext)
}

// ValidateNoteFile 校验文件类型与大小，返回小写扩展名
func ValidateNoteFile(name string, size int64, maxSize int64) (string, error) {
	if name == "" {
		return "", ErrFileRequired
	}
	if maxSize > 0 && size > maxSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(path.Ext(name))
	if _, ok := noteExtensions[ext]; !ok {
		return "", ErrFileType
	}
	return ext, nil
}

func (s *NoteService) CreateNote(ctx context.Context, authorID uint64, req *types.CreateNoteRequest, file *types.FileUpload) (*types.CreateNoteResponse, error) {
	if file == nil || file.Reader == nil {
		return nil, ErrFileRequired
	}
	ext, err := ValidateNoteFile(file.Name, file.Size, s.StorageConf.MaxFileSize)
	if err != nil {
		return nil, err
	}

	key := NoteObjectKey(time.Now(), ext)
	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = noteExtensions[ext]
	}
	if err := s.Store.Put(ctx, key, file.Reader, file.Size, contentType); err != nil {
		return nil, fmt.Errorf("store note file: %w", err)
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	note := &models.Note{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Subject:     strings.TrimSpace(req.Subject),
		FilePath:    key,
		FileName:    path.Base(file.Name),
		FileSize:    file.Size,
		Tags:        tags,
	}
	unlocked, err := s.Ledger.CreateNote(ctx, note, authorID)
	if err != nil {
		// 文件已写入存储，记录下来便于清理
		log.L.Error("create note failed, orphan file", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil {
		return nil, err
	}

	resp := &types.CreateNoteResponse{
		Note:         s.toItem(note, author, false),
		Credits:      author.Credits,
		Achievements: make([]types.AchievementItem, 0, len(unlocked)),
	}
	for _, a := range unlocked {
		resp.Achievements = append(resp.Achievements, toAchievementItem(a))
	}
	return resp, nil
}

func (s *NoteService) ListNotes(ctx context.Context, req *types.ListReq, viewerID uint64) ([]*types.NoteItem, error) {
	req.Normalize()
	notes, err := s.NoteDAO.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(notes))
	authorIDs := make([]uint64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
		authorIDs = append(authorIDs, n.AuthorID)
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeService.LikedSet(ctx, models.TargetNote, ids, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.NoteItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, s.toItem(n, authors[n.AuthorID], liked[n.ID]))
	}
	return items, nil
}

func (s *NoteService) GetNote(ctx context.Context, noteID uint64, viewerID uint64) (*types.NoteItem, error) {
	note, err := s.find(ctx, noteID)
	if err != nil {
		return nil, err
	}
	author, err := s.UserDAO.FindById(ctx, note.AuthorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	liked, err := s.LikeService.IsLiked(ctx, models.TargetNote, noteID, viewerID)
	if err != nil {
		return nil, err
	}
	return s.toItem(note, author, liked), nil
}

func (s *NoteService) Download(ctx context.Context, noteID uint64) (*models.Note, io.ReadCloser, error) {
	note, err := s.find(ctx, noteID)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.Store.Get(ctx, note.FilePath)
	if errors.Is(err, filestore.ErrNotFound) {
		return nil, nil, ErrFileNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open note file: %w", err)
	}

	if err := s.NoteDAO.IncrDownloadCount(ctx, noteID); err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("incr download count: %w", err)
	}
	note.DownloadsCount++
	return note, reader, nil
}

func (s *NoteService) find(ctx context.Context, noteID uint64) (*models.Note, error) {
	note, err := s.NoteDAO.FindById(ctx, noteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoteNotFound
	}
	return note, err
}

func (s *NoteService) toItem(n *models.Note, author *models.User, liked bool) *types.NoteItem {
	tags := []string(n.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &types.NoteItem{
		ID:             n.ID,
		Title:          n.Title,
		Description:    n.Description,
		Subject:        n.Subject,
		FileName:       n.FileName,
		FileSize:       n.FileSize,
		FileURL:        s.Store.URL(n.FilePath),
		Tags:           tags,
		LikesCount:     n.LikesCount,
		CommentsCount:  n.CommentsCount,
		DownloadsCount: n.DownloadsCount,
		CreditsAwarded: n.CreditsAwarded,
		IsLiked:        liked,
		Author:         types.NewAuthorInfo(author),
		CreatedAt:      n.CreatedAt,
	}
}

func toAchievementItem(a *models.Achievement) types.AchievementItem {
	return types.AchievementItem{
		ID:             a.ID,
		Type:           a.Type,
		Title:          a.Title,
		Description:    a.Description,
		CreditsAwarded: a.CreditsAwarded,
		CreatedAt:      a.CreatedAt,
	}
}
