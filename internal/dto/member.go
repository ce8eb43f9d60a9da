package dto

// ── 成员模块 DTO ──

// CreateMemberRequest 创建成员请求
type CreateMemberRequest struct {
	Name     string  `json:"name"      binding:"required,min=1,max=100"`
	Phone    *string `json:"phone"     binding:"omitempty,max=30"`
	CellID   *string `json:"cell_id"   binding:"omitempty,uuid"`
	JoinYear *int    `json:"join_year" binding:"omitempty,min=1900,max=2100"`
}

// UpdateMemberRequest 更新成员请求
type UpdateMemberRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone"     binding:"omitempty,max=30"`
	CellID   *string `json:"cell_id"   binding:"omitempty,uuid"`
	JoinYear *int    `json:"join_year" binding:"omitempty,min=1900,max=2100"`
	IsActive *bool   `json:"is_active"`
	Version  *int    `json:"version"`
}

// ListMembersRequest 成员列表查询参数
type ListMembersRequest struct {
	PaginationRequest
	CellID string `form:"cell_id" binding:"omitempty,uuid"`
	Active *bool  `form:"active"`
}

// MemberResponse 成员信息响应
type MemberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	CellID    *string `json:"cell_id,omitempty"`
	CellName  *string `json:"cell_name,omitempty"`
	JoinYear  *int    `json:"join_year,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}
