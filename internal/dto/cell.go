package dto

// ── 小组模块 DTO ──

// CreateCellRequest 创建小组请求
type CreateCellRequest struct {
	Name        string  `json:"name"        binding:"required,min=1,max=100"`
	LeaderID    *string `json:"leader_id"   binding:"omitempty,uuid"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UpdateCellRequest 更新小组请求
type UpdateCellRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	LeaderID    *string `json:"leader_id"   binding:"omitempty,uuid"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// CellResponse 小组信息响应
type CellResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	LeaderID    *string `json:"leader_id,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	MemberCount int64   `json:"member_count"`
	CreatedAt   string  `json:"created_at"`
}
