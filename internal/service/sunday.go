package service

import "time"

// ── 主日枚举 ──

// EnumerateSundays 枚举区间内的全部主日（两端含），升序返回
// 区间内没有主日时返回空切片
func EnumerateSundays(start, end time.Time) []time.Time {
	start = normalizeDate(start)
	end = normalizeDate(end)

	sundays := []time.Time{}
	if end.Before(start) {
		return sundays
	}

	// 推进到首个主日；start 本身是主日时不偏移
	shift := (7 - int(start.Weekday())) % 7
	for d := start.AddDate(0, 0, shift); !d.After(end); d = d.AddDate(0, 0, 7) {
		sundays = append(sundays, d)
	}
	return sundays
}

// MonthOverlapsRange 判断某年某月是否与区间有交集
// 月视图的上一月/下一月导航按所属学期的月份跨度钳制时使用
func MonthOverlapsRange(year int, month int, r *DateRange) bool {
	if r == nil || month < 1 || month > 12 {
		return false
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return !first.After(r.End) && !last.Before(r.Start)
}
