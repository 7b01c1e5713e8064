package service

import (
	"StudyHub/dao"
	"StudyHub/dao/cache"
	"StudyHub/pkg/log"
	"StudyHub/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultAchievementLimit = 5
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	GetUserStats(ctx context.Context, userID uint64) (*types.UserStats, error)
	GetAchievements(ctx context.Context, userID uint64, limit int) ([]types.AchievementItem, error)
	Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardItem, error)
}

type StatsService struct {
	UserDAO        *dao.Users
	NoteDAO        *dao.NoteDAO
	LikeDAO        *dao.LikeDAO
	AchievementDAO *dao.AchievementDAO
	Cache          *cache.LeaderboardStorage
}

func (s *StatsService) GetUserStats(ctx context.Context, userID uint64) (*types.UserStats, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	stats := &types.UserStats{Credits: user.Credits}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		count, err := s.NoteDAO.CountByAuthor(egCtx, userID)
		stats.NotesCount = count
		return err
	})
	eg.Go(func() error {
		count, err := s.LikeDAO.CountReceivedOnNotes(egCtx, userID)
		stats.LikesReceived = count
		return err
	})
	eg.Go(func() error {
		above, err := s.UserDAO.CountAbove(egCtx, user.Credits)
		stats.Rank = above + 1
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) GetAchievements(ctx context.Context, userID uint64, limit int) ([]types.AchievementItem, error) {
	if limit <= 0 || limit > types.MaxPageSize {
		limit = DefaultAchievementLimit
	}
	list, err := s.AchievementDAO.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]types.AchievementItem, 0, len(list))
	for _, a := range list {
		items = append(items, toAchievementItem(a))
	}
	return items, nil
}

// Leaderboard 积分排行，优先读缓存，缓存异常时直接查库
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardItem, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	var items []types.LeaderboardItem
	hit, err := s.Cache.Get(ctx, limit, &items)
	if err != nil {
		log.L.Warn("read leaderboard cache", zap.Error(err))
	}
	if hit {
		return items, nil
	}

	users, err := s.UserDAO.TopByCredits(ctx, limit)
	if err != nil {
		return nil, err
	}
	items = make([]types.LeaderboardItem, 0, len(users))
	for i, u := range users {
		items = append(items, types.LeaderboardItem{
			Rank:     i + 1,
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Avatar:   u.Avatar,
			Credits:  u.Credits,
		})
	}

	if err := s.Cache.Set(ctx, limit, items); err != nil {
		log.L.Warn("write leaderboard cache", zap.Error(err))
	}
	return items, nil
}
