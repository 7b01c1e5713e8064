package service

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/filestore"
	"StudyHub/pkg/snowflake"
	"StudyHub/types"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

// 帖子配图允许的格式
var imageFormats = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostItem, error)
	ListPosts(ctx context.Context, req *types.ListReq, viewerID uint64) ([]*types.PostItem, error)
	UploadImage(ctx context.Context, authorID uint64, file *types.FileUpload) (*types.UploadImageResponse, error)
}

type PostService struct {
	StorageConf *config.StorageConfig
	Store       filestore.Store
	PostDAO     *dao.PostDAO
	UserDAO     *dao.Users
	LikeService ILikeService
}

// CreatePost 发帖不奖励积分
func (s *PostService) CreatePost(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostItem, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	postType := req.PostType
	if postType == "" {
		postType = models.PostTypePost
	}

	post := &models.Post{
		ID:            snowflake.GenID(),
		Content:       content,
		ImageURL:      req.ImageURL,
		PostType:      postType,
		RewardCredits: req.RewardCredits,
		AuthorID:      authorID,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return toPostItem(post, author, false), nil
}

func (s *PostService) ListPosts(ctx context.Context, req *types.ListReq, viewerID uint64) ([]*types.PostItem, error) {
	req.Normalize()
	posts, err := s.PostDAO.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(posts))
	authorIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
		authorIDs = append(authorIDs, p.AuthorID)
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeService.LikedSet(ctx, models.TargetPost, ids, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostItem(p, authors[p.AuthorID], liked[p.ID]))
	}
	return items, nil
}

func (s *PostService) UploadImage(ctx context.Context, authorID uint64, file *types.FileUpload) (*types.UploadImageResponse, error) {
	if file == nil || file.Reader == nil {
		return nil, ErrFileRequired
	}
	maxSize := s.StorageConf.MaxFileSize
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	if file.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	// 多读 1 字节判断是否超限
	data, err := io.ReadAll(io.LimitReader(file.Reader, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, ErrFileTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFileType
	}
	ext, ok := imageFormats[strings.ToLower(format)]
	if !ok {
		return nil, ErrFileType
	}

	key := fmt.Sprintf("posts/%d/%s/%s%s", authorID, time.Now().Format("2006/01/02"), uuid.NewString(), ext)
	if err := s.Store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/"+format); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	return &types.UploadImageResponse{
		URL:    s.Store.URL(key),
		Key:    key,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   int64(len(data)),
	}, nil
}

func toPostItem(p *models.Post, author *models.User, liked bool) *types.PostItem {
	return &types.PostItem{
		ID:            p.ID,
		Content:       p.Content,
		ImageURL:      p.ImageURL,
		PostType:      p.PostType,
		RewardCredits: p.RewardCredits,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		IsLiked:       liked,
		Author:        types.NewAuthorInfo(author),
		CreatedAt:     p.CreatedAt,
	}
}
