package service

import (
	"time"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
)

// ── 考勤统计区间解析 ──────────────────────────────────────────
//
// 职责：将前端的区间过滤参数（年 / 月 / 学期 / 自定义区间）
// 连同学期窗口解析为一个具体的 [start, end] 日期区间。
//
// 设计决策：
//   - 条件不完整（未选年份、缺起止日期等）返回 nil，表示"尚不应查询"，
//     不作为错误处理
//   - 年 / 月模式下按重叠学期裁剪区间，避免把学期外的主日计入缺勤；
//     学期之间的假期区间合法地得到零个主日
//   - 显式选择学期或自定义区间时不做裁剪，按字面区间返回
//   - 学期正常情况下互不重叠；重叠数据按"最早开始、最晚结束"防御性处理
// ─────────────────────────────────────────────────────────────

const (
	FilterTypeUnit  = "unit"
	FilterTypeRange = "range"

	UnitTypeYear     = "year"
	UnitTypeMonth    = "month"
	UnitTypeSemester = "semester"
)

const dateLayout = "2006-01-02"

// DateRange 解析后的查询区间，两端含
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod 将区间过滤参数解析为具体日期区间
// 返回 nil 表示条件不完整，调用方不应发起查询
func ResolvePeriod(filter *dto.PeriodFilter, semesters []model.Semester) *DateRange {
	if filter == nil {
		return nil
	}

	// 自定义区间：起止日期缺一不可，按字面返回
	if filter.FilterType == FilterTypeRange {
		start, err1 := time.Parse(dateLayout, filter.StartDate)
		end, err2 := time.Parse(dateLayout, filter.EndDate)
		if err1 != nil || err2 != nil || end.Before(start) {
			return nil
		}
		return &DateRange{Start: start, End: end}
	}

	// 显式选择学期：命中时按学期区间字面返回；未命中退回年/月逻辑
	if filter.UnitType == UnitTypeSemester && filter.SemesterID != "" {
		for i := range semesters {
			if semesters[i].SemesterID == filter.SemesterID {
				return &DateRange{
					Start: normalizeDate(semesters[i].StartDate),
					End:   normalizeDate(semesters[i].EndDate),
				}
			}
		}
	}

	// 年 / 月模式：未选年份时不形成查询区间
	if filter.Year <= 0 {
		return nil
	}

	var raw DateRange
	if filter.UnitType == UnitTypeMonth && filter.Month >= 1 && filter.Month <= 12 {
		first := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		raw = DateRange{Start: first, End: first.AddDate(0, 1, -1)}
	} else {
		raw = DateRange{
			Start: time.Date(filter.Year, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(filter.Year, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	return clipToSemesters(raw, semesters)
}

// clipToSemesters 按重叠学期裁剪原始区间
// 无重叠学期时原样返回（假期月份合法地没有应出席的主日）
// 多个学期重叠时取最早开始、最晚结束
func clipToSemesters(raw DateRange, semesters []model.Semester) *DateRange {
	var earliestStart, latestEnd time.Time
	found := false

	for i := range semesters {
		semStart := normalizeDate(semesters[i].StartDate)
		semEnd := normalizeDate(semesters[i].EndDate)

		// 重叠判定：semStart <= rawEnd && semEnd >= rawStart
		if semStart.After(raw.End) || semEnd.Before(raw.Start) {
			continue
		}

		if !found {
			found = true
			earliestStart = semStart
			latestEnd = semEnd
			continue
		}
		if semStart.Before(earliestStart) {
			earliestStart = semStart
		}
		if semEnd.After(latestEnd) {
			latestEnd = semEnd
		}
	}

	if !found {
		return &raw
	}

	clipped := raw
	if raw.Start.Before(earliestStart) {
		clipped.Start = earliestStart
	}
	if raw.End.After(latestEnd) {
		clipped.End = latestEnd
	}
	return &clipped
}

// normalizeDate 归一化为 UTC 零点（忽略时分秒与时区偏移）
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
