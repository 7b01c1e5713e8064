package service

import (
	"StudyHub/config"
	"StudyHub/models"
	"StudyHub/types"
	"fmt"
)

// AchievementRule 成就解锁规则
type AchievementRule struct {
	Type        string
	Title       string
	Description string
	Credits     int64
	// Threshold 达到该值即解锁
	Threshold int64
}

// LedgerRules 积分与成就规则表，不做任何 IO
type LedgerRules struct {
	conf *config.Ledger
}

func NewLedgerRules(conf *config.Ledger) *LedgerRules {
	if conf == nil {
		conf = config.DefaultLedger()
	}
	return &LedgerRules{conf: conf}
}

// SignupAward 注册赠送积分
func (r *LedgerRules) SignupAward() int64 {
	return r.conf.SignupCredits
}

// NoteAward 上传笔记的奖励，笔记自带奖励值时以笔记为准
func (r *LedgerRules) NoteAward(note *models.Note) int64 {
	if note != nil && note.CreditsAwarded > 0 {
		return note.CreditsAwarded
	}
	if r.conf.NoteAward > 0 {
		return r.conf.NoteAward
	}
	return models.DefaultNoteCredits
}

func (r *LedgerRules) firstNote() AchievementRule {
	return AchievementRule{
		Type:        models.AchievementFirstNote,
		Title:       "Primer Apunte",
		Description: "Has subido tu primer apunte",
		Credits:     r.conf.FirstNoteAward,
		Threshold:   1,
	}
}

func (r *LedgerRules) hundredLikes() AchievementRule {
	return AchievementRule{
		Type:        models.AchievementHundredLikes,
		Title:       "Apunte Popular",
		Description: fmt.Sprintf("Tus apuntes recibieron %d me gusta", r.conf.LikesMilestone),
		Credits:     r.conf.LikesMilestoneAw,
		Threshold:   r.conf.LikesMilestone,
	}
}

// AfterNoteCreated 根据作者笔记总数返回应尝试解锁的成就
// 重复返回没有关系，落库时由 (user_id, type) 唯一键保证只解锁一次
func (r *LedgerRules) AfterNoteCreated(notesCount int64) []AchievementRule {
	rule := r.firstNote()
	if notesCount >= rule.Threshold {
		return []AchievementRule{rule}
	}
	return nil
}

// AfterLikeReceived 根据作者笔记累计获赞返回应尝试解锁的成就
func (r *LedgerRules) AfterLikeReceived(likesReceived int64) []AchievementRule {
	rule := r.hundredLikes()
	if rule.Threshold > 0 && likesReceived >= rule.Threshold {
		return []AchievementRule{rule}
	}
	return nil
}

// Grant 规则转换为授予参数
func (a AchievementRule) Grant(userID uint64) *types.AchievementGrant {
	return &types.AchievementGrant{
		UserID:         userID,
		Type:           a.Type,
		Title:          a.Title,
		Description:    a.Description,
		CreditsAwarded: a.Credits,
	}
}

// 流水业务单号，与 change_type 一起组成唯一键
func signupSource(userID uint64) string {
	return fmt.Sprintf("signup:%d", userID)
}

func noteSource(noteID uint64) string {
	return fmt.Sprintf("note:%d", noteID)
}

func achievementSource(achievementType string) string {
	return "achievement:" + achievementType
}
