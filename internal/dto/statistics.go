package dto

// ── 统计模块 DTO ──
//
// 查询区间由「过滤方式」二选一决定：
//   filter_type=unit  → 按 unit_type (year | month | semester) + 对应字段解析
//   filter_type=range → 按 start_date / end_date 解析
// 条件不完整时不报错，返回空矩阵（range 为 null）。

// PeriodFilter 考勤统计区间过滤参数
type PeriodFilter struct {
	FilterType string `form:"filter_type" binding:"omitempty,oneof=unit range"`
	UnitType   string `form:"unit_type"   binding:"omitempty,oneof=year month semester"`
	Year       int    `form:"year"        binding:"omitempty,min=1900,max=2100"`
	Month      int    `form:"month"       binding:"omitempty,min=1,max=12"`
	SemesterID string `form:"semester_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// AttendanceMatrixRequest 考勤矩阵查询参数
type AttendanceMatrixRequest struct {
	PeriodFilter
	CellID string `form:"cell_id" binding:"omitempty,uuid"`
}

// DateRangeResponse 解析后的有效查询区间
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MatrixRowResponse 矩阵单行（一位成员）
// Cells 与 Sundays 一一对应，取值 PRESENT | ABSENT | UNMARKED
type MatrixRowResponse struct {
	MemberID       string   `json:"member_id"`
	MemberName     string   `json:"member_name"`
	Cells          []string `json:"cells"`
	PresentCount   int      `json:"present_count"`
	AttendanceRate int      `json:"attendance_rate"` // 0-100，分母为全部列数
}

// AttendanceSummaryResponse 汇总卡片数据
type AttendanceSummaryResponse struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Unchecked int `json:"unchecked"` // 估算值，按成员加入日期折算
	Rate      int `json:"rate"`      // 0-100
}

// MatrixNavigationResponse 月视图的上一月/下一月可用性（按学期跨度钳制）
type MatrixNavigationResponse struct {
	PrevAvailable bool `json:"prev_available"`
	NextAvailable bool `json:"next_available"`
}

// AttendanceMatrixResponse 考勤矩阵响应
// Range 为 null 表示过滤条件不完整，未执行查询
type AttendanceMatrixResponse struct {
	Range      *DateRangeResponse        `json:"range"`
	Sundays    []string                  `json:"sundays"`
	Rows       []MatrixRowResponse       `json:"rows"`
	Summary    AttendanceSummaryResponse `json:"summary"`
	Navigation *MatrixNavigationResponse `json:"navigation,omitempty"`
}
