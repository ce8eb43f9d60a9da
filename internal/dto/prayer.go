package dto

// ── 代祷模块 DTO ──

// CreatePrayerRequest 创建代祷请求
type CreatePrayerRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Content  string `json:"content"   binding:"required,min=1,max=2000"`
}

// UpdatePrayerRequest 更新代祷请求
type UpdatePrayerRequest struct {
	Content    *string `json:"content"     binding:"omitempty,min=1,max=2000"`
	IsAnswered *bool   `json:"is_answered"`
}

// ListPrayersRequest 代祷列表查询参数
type ListPrayersRequest struct {
	PaginationRequest
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	CellID   string `form:"cell_id"   binding:"omitempty,uuid"`
	Answered *bool  `form:"answered"`
}

// PrayerResponse 代祷请求响应
type PrayerResponse struct {
	ID         string  `json:"id"`
	MemberID   string  `json:"member_id"`
	MemberName string  `json:"member_name,omitempty"`
	Content    string  `json:"content"`
	IsAnswered bool    `json:"is_answered"`
	AnsweredAt *string `json:"answered_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// PrayerSummaryResponse 代祷汇总响应
type PrayerSummaryResponse struct {
	Total    int64            `json:"total"`
	Answered int64            `json:"answered"`
	Open     int64            `json:"open"`
	Recent   []PrayerResponse `json:"recent"`
}
