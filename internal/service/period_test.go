package service

import (
	"testing"
	"time"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
)

// ── 测试辅助 ──

func mkDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mkSemester(id, name string, start, end time.Time) model.Semester {
	return model.Semester{
		SemesterID: id,
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Status:     "active",
	}
}

// ── 条件不完整 ──

func TestResolvePeriod_NilFilter(t *testing.T) {
	if got := ResolvePeriod(nil, nil); got != nil {
		t.Errorf("nil filter 应返回 nil，实际=%+v", got)
	}
}

func TestResolvePeriod_UnitWithoutYear(t *testing.T) {
	filter := &dto.PeriodFilter{FilterType: FilterTypeUnit, UnitType: UnitTypeYear}
	if got := ResolvePeriod(filter, nil); got != nil {
		t.Errorf("未选年份应返回 nil，实际=%+v", got)
	}
}

// ── 自定义区间模式 ──

func TestResolvePeriod_RangeMode(t *testing.T) {
	filter := &dto.PeriodFilter{
		FilterType: FilterTypeRange,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-31",
	}
	// 即使存在学期也不裁剪
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 10), mkDate(2026, 6, 30)),
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("合法区间不应返回 nil")
	}
	if !got.Start.Equal(mkDate(2026, 3, 1)) || !got.End.Equal(mkDate(2026, 3, 31)) {
		t.Errorf("自定义区间应按字面返回，实际=[%v, %v]", got.Start, got.End)
	}
}

func TestResolvePeriod_RangeModeIncomplete(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"缺起始日期", "", "2026-03-31"},
		{"缺结束日期", "2026-03-01", ""},
		{"起始日期非法", "not-a-date", "2026-03-31"},
		{"结束早于起始", "2026-03-31", "2026-03-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := &dto.PeriodFilter{
				FilterType: FilterTypeRange,
				StartDate:  tc.start,
				EndDate:    tc.end,
			}
			if got := ResolvePeriod(filter, nil); got != nil {
				t.Errorf("应返回 nil，实际=%+v", got)
			}
		})
	}
}

// ── 学期模式 ──

func TestResolvePeriod_SemesterMode(t *testing.T) {
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 1), mkDate(2026, 6, 30)),
		mkSemester("s2", "가을학기", mkDate(2026, 9, 1), mkDate(2026, 12, 20)),
	}

	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeSemester,
		SemesterID: "s2",
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("命中学期不应返回 nil")
	}
	if !got.Start.Equal(mkDate(2026, 9, 1)) || !got.End.Equal(mkDate(2026, 12, 20)) {
		t.Errorf("应按学期区间字面返回，实际=[%v, %v]", got.Start, got.End)
	}
}

func TestResolvePeriod_SemesterModeMissFallsBack(t *testing.T) {
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 1), mkDate(2026, 6, 30)),
	}

	// 学期未命中且未选年份 → nil
	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeSemester,
		SemesterID: "unknown",
	}
	if got := ResolvePeriod(filter, semesters); got != nil {
		t.Errorf("学期未命中且无年份应返回 nil，实际=%+v", got)
	}

	// 学期未命中但有年份 → 退回年逻辑
	filter.Year = 2026
	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("有年份时应退回年逻辑")
	}
	if !got.Start.Equal(mkDate(2026, 3, 1)) {
		t.Errorf("年区间应按学期裁剪起点，实际 Start=%v", got.Start)
	}
}

// ── 年 / 月模式 + 学期裁剪 ──

func TestResolvePeriod_MonthClippedBySemester(t *testing.T) {
	// 学期 3/10 开学：3 月视图应裁到 [3/10, 3/31]
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 10), mkDate(2026, 6, 30)),
	}

	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeMonth,
		Year:       2026,
		Month:      3,
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("不应返回 nil")
	}
	if !got.Start.Equal(mkDate(2026, 3, 10)) {
		t.Errorf("期望 Start=2026-03-10，实际=%v", got.Start)
	}
	if !got.End.Equal(mkDate(2026, 3, 31)) {
		t.Errorf("期望 End=2026-03-31，实际=%v", got.End)
	}
}

func TestResolvePeriod_MonthNoOverlapUnchanged(t *testing.T) {
	// 假期月份（8 月）与学期无交集：原样返回，由主日枚举合法地得到零列
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 1), mkDate(2026, 6, 30)),
	}

	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeMonth,
		Year:       2026,
		Month:      8,
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("无重叠学期时应原样返回原始区间")
	}
	if !got.Start.Equal(mkDate(2026, 8, 1)) || !got.End.Equal(mkDate(2026, 8, 31)) {
		t.Errorf("期望 [2026-08-01, 2026-08-31]，实际=[%v, %v]", got.Start, got.End)
	}
}

func TestResolvePeriod_YearClippedByMultipleSemesters(t *testing.T) {
	// 年视图跨两个学期：取最早开始、最晚结束
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 1), mkDate(2026, 6, 30)),
		mkSemester("s2", "가을학기", mkDate(2026, 9, 1), mkDate(2026, 12, 20)),
	}

	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeYear,
		Year:       2026,
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("不应返回 nil")
	}
	if !got.Start.Equal(mkDate(2026, 3, 1)) {
		t.Errorf("期望 Start=2026-03-01，实际=%v", got.Start)
	}
	if !got.End.Equal(mkDate(2026, 12, 20)) {
		t.Errorf("期望 End=2026-12-20，实际=%v", got.End)
	}
}

func TestResolvePeriod_ClipNeverExpands(t *testing.T) {
	// 学期比查询月更宽：裁剪不应把区间扩大到学期
	semesters := []model.Semester{
		mkSemester("s1", "봄학기", mkDate(2026, 3, 1), mkDate(2026, 6, 30)),
	}

	filter := &dto.PeriodFilter{
		FilterType: FilterTypeUnit,
		UnitType:   UnitTypeMonth,
		Year:       2026,
		Month:      4,
	}

	got := ResolvePeriod(filter, semesters)
	if got == nil {
		t.Fatal("不应返回 nil")
	}
	if !got.Start.Equal(mkDate(2026, 4, 1)) || !got.End.Equal(mkDate(2026, 4, 30)) {
		t.Errorf("裁剪不应扩大区间，实际=[%v, %v]", got.Start, got.End)
	}
}
