package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
)

// StatisticsService 考勤统计业务接口
//
// 矩阵与汇总在每次请求时由原始考勤记录重新计算，不做跨请求缓存。
// 已知的不一致（与既有前端口径保持一致，刻意未统一）：
//   - 行内出席率的分母是区间内全部主日列数，不按成员加入日期折算
//   - 顶部"未签到"估算的分母按成员加入日期折算
type StatisticsService interface {
	AttendanceMatrix(ctx context.Context, req *dto.AttendanceMatrixRequest) (*dto.AttendanceMatrixResponse, error)
	AttendanceSummary(ctx context.Context, req *dto.AttendanceMatrixRequest) (*dto.AttendanceSummaryResponse, error)
}

type statisticsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatisticsService 创建 StatisticsService 实例
func NewStatisticsService(repo *repository.Repository, logger *zap.Logger) StatisticsService {
	return &statisticsService{repo: repo, logger: logger}
}

// ────────────────────── AttendanceMatrix ──────────────────────

func (s *statisticsService) AttendanceMatrix(ctx context.Context, req *dto.AttendanceMatrixRequest) (*dto.AttendanceMatrixResponse, error) {
	semesters, err := s.repo.Semester.List(ctx, true)
	if err != nil {
		s.logger.Error("查询学期列表失败", zap.Error(err))
		return nil, err
	}

	resolved := ResolvePeriod(&req.PeriodFilter, semesters)
	if resolved == nil {
		// 条件不完整：返回空矩阵而非错误
		return emptyMatrixResponse(), nil
	}

	active := true
	members, err := s.repo.Member.ListAll(ctx, repository.MemberFilter{
		CellID: req.CellID,
		Active: &active,
	})
	if err != nil {
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		StartDate: resolved.Start,
		EndDate:   resolved.End,
		CellID:    req.CellID,
	})
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	sundays := EnumerateSundays(resolved.Start, resolved.End)
	index := BuildAttendanceIndex(records)

	resp := &dto.AttendanceMatrixResponse{
		Range: &dto.DateRangeResponse{
			StartDate: resolved.Start.Format(dateLayout),
			EndDate:   resolved.End.Format(dateLayout),
		},
		Sundays: make([]string, 0, len(sundays)),
		Rows:    make([]dto.MatrixRowResponse, 0, len(members)),
	}
	for _, d := range sundays {
		resp.Sundays = append(resp.Sundays, d.Format(dateLayout))
	}

	eligibleSum := 0
	for i := range members {
		m := &members[i]
		row := dto.MatrixRowResponse{
			MemberID:   m.MemberID,
			MemberName: m.Name,
			Cells:      make([]string, 0, len(sundays)),
		}

		for _, d := range sundays {
			status, ok := index[attendanceKey(m.MemberID, d.Format(dateLayout))]
			if !ok {
				status = "UNMARKED"
			}
			if status == model.AttendanceStatusPresent {
				row.PresentCount++
			}
			row.Cells = append(row.Cells, status)
		}

		// 行内出席率：分母为全部列数，零列时为 0
		row.AttendanceRate = percentage(row.PresentCount, len(sundays))
		resp.Rows = append(resp.Rows, row)

		eligibleSum += CountEligibleSundays(EffectiveJoinDate(m), sundays)
	}

	resp.Summary = summarize(records, eligibleSum)
	resp.Navigation = s.monthNavigation(&req.PeriodFilter, semesters)

	return resp, nil
}

// ────────────────────── AttendanceSummary ──────────────────────

func (s *statisticsService) AttendanceSummary(ctx context.Context, req *dto.AttendanceMatrixRequest) (*dto.AttendanceSummaryResponse, error) {
	matrix, err := s.AttendanceMatrix(ctx, req)
	if err != nil {
		return nil, err
	}
	return &matrix.Summary, nil
}

// ── 内部辅助方法 ──

// summarize 汇总卡片数据：已出席 / 缺席 / 估算未签到 / 出席率
func summarize(records []model.AttendanceRecord, eligibleSum int) dto.AttendanceSummaryResponse {
	present, absent := 0, 0
	for i := range records {
		switch records[i].Status {
		case model.AttendanceStatusPresent:
			present++
		case model.AttendanceStatusAbsent:
			absent++
		}
	}

	return dto.AttendanceSummaryResponse{
		Present:   present,
		Absent:    absent,
		Unchecked: EstimateUnchecked(eligibleSum, present+absent),
		Rate:      percentage(present, present+absent),
	}
}

// percentage 四舍五入的百分比，分母为 0 时返回 0
func percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// monthNavigation 月视图导航可用性：上一月/下一月须落在某个学期的跨度内
func (s *statisticsService) monthNavigation(filter *dto.PeriodFilter, semesters []model.Semester) *dto.MatrixNavigationResponse {
	if filter.FilterType == FilterTypeRange || filter.UnitType != UnitTypeMonth {
		return nil
	}
	if filter.Year <= 0 || filter.Month < 1 || filter.Month > 12 {
		return nil
	}

	prevYear, prevMonth := filter.Year, filter.Month-1
	if prevMonth < 1 {
		prevYear, prevMonth = prevYear-1, 12
	}
	nextYear, nextMonth := filter.Year, filter.Month+1
	if nextMonth > 12 {
		nextYear, nextMonth = nextYear+1, 1
	}

	return &dto.MatrixNavigationResponse{
		PrevAvailable: monthHasSemester(prevYear, prevMonth, semesters),
		NextAvailable: monthHasSemester(nextYear, nextMonth, semesters),
	}
}

// monthHasSemester 判断某月是否与任一学期有交集
func monthHasSemester(year, month int, semesters []model.Semester) bool {
	for i := range semesters {
		r := &DateRange{
			Start: normalizeDate(semesters[i].StartDate),
			End:   normalizeDate(semesters[i].EndDate),
		}
		if MonthOverlapsRange(year, month, r) {
			return true
		}
	}
	return false
}

// emptyMatrixResponse 条件不完整时的空矩阵响应
func emptyMatrixResponse() *dto.AttendanceMatrixResponse {
	return &dto.AttendanceMatrixResponse{
		Range:   nil,
		Sundays: []string{},
		Rows:    []dto.MatrixRowResponse{},
	}
}
