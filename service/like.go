package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Like 幂等点赞，返回当前点赞数
	Like(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (int64, error)
	// Unlike 幂等取消点赞，返回当前点赞数
	Unlike(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (int64, error)
	IsLiked(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (bool, error)
	LikedSet(ctx context.Context, kind models.TargetKind, targetIDs []uint64, userID uint64) (map[uint64]bool, error)
}

type LikeService struct {
	DB      *gorm.DB
	LikeDAO *dao.LikeDAO
	NoteDAO *dao.NoteDAO
	PostDAO *dao.PostDAO
	Ledger  ILedgerService
}

// target 点赞目标的作者和计数
type target struct {
	authorID   uint64
	likesCount int64
}

func (s *LikeService) findTarget(ctx context.Context, kind models.TargetKind, targetID uint64) (*target, error) {
	switch kind {
	case models.TargetNote:
		note, err := s.NoteDAO.FindById(ctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		if err != nil {
			return nil, err
		}
		return &target{authorID: note.AuthorID, likesCount: note.LikesCount}, nil
	case models.TargetPost:
		post, err := s.PostDAO.FindById(ctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		if err != nil {
			return nil, err
		}
		return &target{authorID: post.AuthorID, likesCount: post.LikesCount}, nil
	}
	return nil, ErrInvalidTarget
}

func (s *LikeService) incrLikeCount(ctx context.Context, kind models.TargetKind, targetID uint64, delta int64) error {
	if kind == models.TargetPost {
		return s.PostDAO.IncrLikeCount(ctx, targetID, delta)
	}
	return s.NoteDAO.IncrLikeCount(ctx, targetID, delta)
}

func (s *LikeService) Like(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (int64, error) {
	var (
		t        *target
		inserted bool
	)
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		if t, err = s.findTarget(ctx, kind, targetID); err != nil {
			return err
		}

		inserted, err = s.LikeDAO.Insert(ctx, kind, targetID, userID)
		if err != nil {
			return fmt.Errorf("insert like: %w", err)
		}
		if !inserted {
			// 已经点赞过，不做任何操作
			return nil
		}
		if err := s.incrLikeCount(ctx, kind, targetID, 1); err != nil {
			return fmt.Errorf("incr like count: %w", err)
		}
		t, err = s.findTarget(ctx, kind, targetID)
		return err
	})
	if err != nil {
		return 0, err
	}

	if inserted && kind == models.TargetNote {
		if _, err := s.Ledger.OnNoteLiked(ctx, t.authorID); err != nil {
			// 点赞本身已经成功，成就下次点赞时会再次评估
			log.L.Error("evaluate like milestone", zap.Uint64("author_id", t.authorID), zap.Error(err))
		}
	}
	return t.likesCount, nil
}

func (s *LikeService) Unlike(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (int64, error) {
	var t *target
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		if t, err = s.findTarget(ctx, kind, targetID); err != nil {
			return err
		}

		deleted, err := s.LikeDAO.Delete(ctx, kind, targetID, userID)
		if err != nil {
			return fmt.Errorf("delete like: %w", err)
		}
		if deleted == 0 {
			// 没有点赞过，计数保持不变
			return nil
		}
		if err := s.incrLikeCount(ctx, kind, targetID, -deleted); err != nil {
			return fmt.Errorf("decr like count: %w", err)
		}
		t, err = s.findTarget(ctx, kind, targetID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return t.likesCount, nil
}

func (s *LikeService) IsLiked(ctx context.Context, kind models.TargetKind, targetID uint64, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.LikeDAO.IsLiked(ctx, kind, targetID, userID)
}

func (s *LikeService) LikedSet(ctx context.Context, kind models.TargetKind, targetIDs []uint64, userID uint64) (map[uint64]bool, error) {
	return s.LikeDAO.BatchIsLiked(ctx, kind, targetIDs, userID)
}
