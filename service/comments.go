package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/snowflake"
	"StudyHub/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const defaultCommentLimit = 50

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	// CreateComment 写入评论并在同一事务内增加目标的评论数
	CreateComment(ctx context.Context, kind models.TargetKind, targetID uint64, authorID uint64, req *types.CreateCommentRequest) (*types.CommentItem, error)
	ListComments(ctx context.Context, kind models.TargetKind, targetID uint64, limit int) ([]*types.CommentItem, error)
}

type CommentsService struct {
	DB         *gorm.DB
	CommentDAO *dao.Comment
	NoteDAO    *dao.NoteDAO
	PostDAO    *dao.PostDAO
	UserDAO    *dao.Users
}

func (s *CommentsService) ensureTarget(ctx context.Context, kind models.TargetKind, targetID uint64) error {
	switch kind {
	case models.TargetNote:
		exist, err := s.NoteDAO.IsExist(ctx, "id = ?", targetID)
		if err != nil {
			return err
		}
		if !exist {
			return ErrNoteNotFound
		}
		return nil
	case models.TargetPost:
		exist, err := s.PostDAO.IsExist(ctx, "id = ?", targetID)
		if err != nil {
			return err
		}
		if !exist {
			return ErrPostNotFound
		}
		return nil
	}
	return ErrInvalidTarget
}

func (s *CommentsService) CreateComment(ctx context.Context, kind models.TargetKind, targetID uint64, authorID uint64, req *types.CreateCommentRequest) (*types.CommentItem, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	comment := &models.Comment{
		ID:       snowflake.GenID(),
		Content:  content,
		AuthorID: authorID,
	}
	id := targetID
	if kind == models.TargetPost {
		comment.PostID = &id
	} else {
		comment.NoteID = &id
	}

	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if err := s.ensureTarget(ctx, kind, targetID); err != nil {
			return err
		}
		if err := s.CommentDAO.Create(ctx, comment); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if kind == models.TargetPost {
			return s.PostDAO.IncrCommentCount(ctx, targetID, 1)
		}
		return s.NoteDAO.IncrCommentCount(ctx, targetID, 1)
	})
	if err != nil {
		return nil, err
	}

	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return toCommentItem(comment, author), nil
}

func (s *CommentsService) ListComments(ctx context.Context, kind models.TargetKind, targetID uint64, limit int) ([]*types.CommentItem, error) {
	if limit <= 0 || limit > types.MaxPageSize {
		limit = defaultCommentLimit
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	comments, err := s.CommentDAO.ListByTarget(ctx, kind, targetID, limit)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentItem(c, authors[c.AuthorID]))
	}
	return items, nil
}

func toCommentItem(c *models.Comment, author *models.User) *types.CommentItem {
	item := &types.CommentItem{
		ID:        c.ID,
		Content:   c.Content,
		Author:    types.NewAuthorInfo(author),
		CreatedAt: c.CreatedAt,
	}
	if c.NoteID != nil {
		item.NoteID = *c.NoteID
	}
	if c.PostID != nil {
		item.PostID = *c.PostID
	}
	return item
}
