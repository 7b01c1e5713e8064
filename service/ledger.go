package service

import (
	"StudyHub/dao"
	"StudyHub/dao/cache"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"StudyHub/pkg/snowflake"
	"StudyHub/types"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ILedgerService = (*LedgerService)(nil)

type ILedgerService interface {
	// Award 原子入账，同一 (userID, changeType, sourceID) 只入账一次，返回是否真正入账
	Award(ctx context.Context, userID uint64, amount int64, changeType int8, sourceID string, remark string) (bool, error)
	// GrantAchievement 解锁成就并发放奖励，已解锁则返回已有记录和 false
	GrantAchievement(ctx context.Context, grant *types.AchievementGrant) (*models.Achievement, bool, error)
	// CreateNote 保存笔记、奖励作者、评估成就，全部在同一事务内
	CreateNote(ctx context.Context, note *models.Note, authorID uint64) ([]*models.Achievement, error)
	// OnNoteLiked 笔记被点赞后评估作者的获赞成就
	OnNoteLiked(ctx context.Context, authorID uint64) ([]*models.Achievement, error)
	ListRecords(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListCreditRecords, error)
}

type LedgerService struct {
	DB             *gorm.DB
	Rules          *LedgerRules
	UserDAO        *dao.Users
	NoteDAO        *dao.NoteDAO
	LikeDAO        *dao.LikeDAO
	PointDAO       *dao.Point
	AchievementDAO *dao.AchievementDAO
	Leaderboard    *cache.LeaderboardStorage
}

func (s *LedgerService) Award(ctx context.Context, userID uint64, amount int64, changeType int8, sourceID string, remark string) (bool, error) {
	var awarded bool
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		awarded, err = s.award(ctx, userID, amount, changeType, sourceID, remark)
		return err
	})
	if err != nil {
		return false, err
	}
	return awarded, nil
}

// award 必须在事务中调用
func (s *LedgerService) award(ctx context.Context, userID uint64, amount int64, changeType int8, sourceID string, remark string) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}

	entry := &models.CreditLog{
		UserID:     userID,
		Amount:     amount,
		ChangeType: changeType,
		SourceID:   sourceID,
		Remark:     remark,
	}
	inserted, err := s.PointDAO.InsertLog(ctx, entry)
	if err != nil {
		return false, fmt.Errorf("insert credit log: %w", err)
	}
	if !inserted {
		// 同一业务已经入账
		return false, nil
	}

	rows, err := s.UserDAO.IncrCredits(ctx, userID, amount)
	if err != nil {
		return false, fmt.Errorf("incr credits: %w", err)
	}
	if rows == 0 {
		return false, ErrUserNotFound
	}

	balance, err := s.UserDAO.GetCredits(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get credits: %w", err)
	}
	if err := s.PointDAO.UpdateLogBalance(ctx, entry.ID, balance); err != nil {
		return false, fmt.Errorf("update log balance: %w", err)
	}

	dao.AfterCommit(ctx, func() {
		observeAward(changeType, amount)
		s.invalidateLeaderboard(ctx)
	})
	return true, nil
}

func (s *LedgerService) GrantAchievement(ctx context.Context, grant *types.AchievementGrant) (*models.Achievement, bool, error) {
	var (
		item    *models.Achievement
		granted bool
	)
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		item, granted, err = s.grant(ctx, grant)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return item, granted, nil
}

// grant 必须在事务中调用
func (s *LedgerService) grant(ctx context.Context, grant *types.AchievementGrant) (*models.Achievement, bool, error) {
	item := &models.Achievement{
		UserID:         grant.UserID,
		Type:           grant.Type,
		Title:          grant.Title,
		Description:    grant.Description,
		CreditsAwarded: grant.CreditsAwarded,
	}
	inserted, err := s.AchievementDAO.Insert(ctx, item)
	if err != nil {
		return nil, false, fmt.Errorf("insert achievement: %w", err)
	}
	if !inserted {
		existing, err := s.AchievementDAO.FindByUserType(ctx, grant.UserID, grant.Type)
		if err != nil {
			return nil, false, fmt.Errorf("find achievement: %w", err)
		}
		return existing, false, nil
	}

	if grant.CreditsAwarded > 0 {
		if _, err := s.award(ctx, grant.UserID, grant.CreditsAwarded, models.CreditAchievement,
			achievementSource(grant.Type), grant.Title); err != nil {
			return nil, false, err
		}
	}

	dao.AfterCommit(ctx, func() {
		achievementsGrantedTotal.WithLabelValues(grant.Type).Inc()
	})
	return item, true, nil
}

func (s *LedgerService) CreateNote(ctx context.Context, note *models.Note, authorID uint64) ([]*models.Achievement, error) {
	note.AuthorID = authorID
	if note.ID == 0 {
		note.ID = snowflake.GenID()
	}
	note.CreditsAwarded = s.Rules.NoteAward(note)

	var unlocked []*models.Achievement
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if err := s.NoteDAO.Create(ctx, note); err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		if _, err := s.award(ctx, authorID, note.CreditsAwarded, models.CreditNoteUpload,
			noteSource(note.ID), note.Title); err != nil {
			return err
		}

		count, err := s.NoteDAO.CountByAuthor(ctx, authorID)
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		unlocked, err = s.applyRules(ctx, authorID, s.Rules.AfterNoteCreated(count))
		return err
	})
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

func (s *LedgerService) OnNoteLiked(ctx context.Context, authorID uint64) ([]*models.Achievement, error) {
	var unlocked []*models.Achievement
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		received, err := s.LikeDAO.CountReceivedOnNotes(ctx, authorID)
		if err != nil {
			return fmt.Errorf("count likes received: %w", err)
		}
		unlocked, err = s.applyRules(ctx, authorID, s.Rules.AfterLikeReceived(received))
		return err
	})
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

// applyRules 依次尝试解锁，返回本次新解锁的成就
func (s *LedgerService) applyRules(ctx context.Context, userID uint64, rules []AchievementRule) ([]*models.Achievement, error) {
	unlocked := make([]*models.Achievement, 0, len(rules))
	for _, rule := range rules {
		item, granted, err := s.grant(ctx, rule.Grant(userID))
		if err != nil {
			return nil, err
		}
		if granted {
			unlocked = append(unlocked, item)
		}
	}
	return unlocked, nil
}

func (s *LedgerService) ListRecords(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListCreditRecords, error) {
	if limit <= 0 || limit > types.MaxPageSize {
		limit = types.DefaultPageSize
	}

	// 多查一条判断是否还有下一页
	logs, err := s.PointDAO.ListRecords(ctx, userID, int64(cursor), limit+1)
	if err != nil {
		return nil, err
	}
	balance, err := s.UserDAO.GetCredits(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	records := make([]types.CreditRecord, 0, len(logs))
	for _, l := range logs {
		records = append(records, types.CreditRecord{
			ID:         l.ID,
			Amount:     l.Amount,
			Balance:    l.Balance,
			ChangeType: l.ChangeType,
			SourceID:   l.SourceID,
			Remark:     l.Remark,
			CreatedAt:  l.CreatedAt.Format(time.DateTime),
		})
	}

	var next uint64
	if hasMore && len(records) > 0 {
		next = records[len(records)-1].ID
	}
	return &types.ListCreditRecords{
		Balance:    balance,
		Records:    records,
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

// invalidateLeaderboard 积分入账提交后排行榜缓存失效，失败只记录日志
func (s *LedgerService) invalidateLeaderboard(ctx context.Context) {
	if err := s.Leaderboard.Invalidate(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Warn("invalidate leaderboard cache", zap.Error(err))
	}
}
