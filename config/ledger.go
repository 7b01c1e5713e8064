package config

// Ledger 积分规则配置
type Ledger struct {
	SignupCredits    int64 `json:"signup_credits" yaml:"signup_credits"`     // 注册赠送
	NoteAward        int64 `json:"note_award" yaml:"note_award"`             // 上传笔记奖励
	FirstNoteAward   int64 `json:"first_note_award" yaml:"first_note_award"` // 首篇笔记成就奖励
	LikesMilestone   int64 `json:"likes_milestone" yaml:"likes_milestone"`   // 获赞里程碑
	LikesMilestoneAw int64 `json:"likes_milestone_award" yaml:"likes_milestone_award"`
}

func DefaultLedger() *Ledger {
	return &Ledger{
		SignupCredits:    100,
		NoteAward:        50,
		FirstNoteAward:   25,
		LikesMilestone:   100,
		LikesMilestoneAw: 50,
	}
}

// fill 未配置的项使用默认值
func (l *Ledger) fill(def *Ledger) {
	if l.SignupCredits == 0 {
		l.SignupCredits = def.SignupCredits
	}
	if l.NoteAward == 0 {
		l.NoteAward = def.NoteAward
	}
	if l.FirstNoteAward == 0 {
		l.FirstNoteAward = def.FirstNoteAward
	}
	if l.LikesMilestone == 0 {
		l.LikesMilestone = def.LikesMilestone
	}
	if l.LikesMilestoneAw == 0 {
		l.LikesMilestoneAw = def.LikesMilestoneAw
	}
}

func ProvideLedgerConfig(cfg *Config) *Ledger {
	return cfg.Ledger
}
