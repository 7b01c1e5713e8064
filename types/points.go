package types

// CreditRecord 每一条流水的细节
type CreditRecord struct {
	ID         uint64 `json:"id"`
	Amount     int64  `json:"amount"`      // 变动数值
	Balance    int64  `json:"balance"`     // 变动后余额
	ChangeType int8   `json:"change_type"` // 1-注册 2-上传笔记 3-成就
	SourceID   string `json:"source_id"`
	Remark     string `json:"remark"`
	CreatedAt  string `json:"created_at"`
}

// ListCreditRecords 流水列表包装
type ListCreditRecords struct {
	Balance    int64          `json:"balance"`
	Records    []CreditRecord `json:"records"`
	NextCursor uint64         `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool           `json:"has_more"`
}

type ListCreditRecordsReq struct {
	Cursor uint64 `form:"cursor"`
	Limit  int    `form:"limit"`
}

// AchievementGrant 授予成就的参数
type AchievementGrant struct {
	UserID         uint64
	Type           string
	Title          string
	Description    string
	CreditsAwarded int64
}
