package dto

// ── 考勤模块 DTO ──

// CheckInItem 单个成员的签到项
type CheckInItem struct {
	MemberID string  `json:"member_id" binding:"required,uuid"`
	Status   string  `json:"status"    binding:"required,oneof=PRESENT ABSENT"`
	Memo     *string `json:"memo"      binding:"omitempty,max=500"`
}

// CheckInRequest 主日批量签到请求
// 同一 (member, date) 已有记录时按覆盖处理
type CheckInRequest struct {
	Date  string        `json:"date"  binding:"required"` // "2026-03-01"
	Items []CheckInItem `json:"items" binding:"required,min=1,dive"`
}

// ListAttendanceRequest 考勤记录查询参数
type ListAttendanceRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date"   binding:"required"`
	MemberID  string `form:"member_id"  binding:"omitempty,uuid"`
	CellID    string `form:"cell_id"    binding:"omitempty,uuid"`
	Status    string `form:"status"     binding:"omitempty,oneof=PRESENT ABSENT"`
}

// UpdateAttendanceRequest 更新考勤记录请求
type UpdateAttendanceRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=PRESENT ABSENT"`
	Memo   *string `json:"memo"   binding:"omitempty,max=500"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID         string  `json:"id"`
	MemberID   string  `json:"member_id"`
	MemberName string  `json:"member_name,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Memo       *string `json:"memo,omitempty"`
}

// CheckInResponse 批量签到响应
type CheckInResponse struct {
	Date    string `json:"date"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"` // 不存在或已停用的成员
}
