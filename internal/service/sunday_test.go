package service

import (
	"testing"
	"time"
)

// ── EnumerateSundays ──

func TestEnumerateSundays_March2024(t *testing.T) {
	// 2024-03-01 是周五；该月主日为 3, 10, 17, 24, 31
	got := EnumerateSundays(mkDate(2024, 3, 1), mkDate(2024, 3, 31))

	want := []int{3, 10, 17, 24, 31}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 个主日，实际=%d", len(want), len(got))
	}
	for i, day := range want {
		if got[i].Day() != day || got[i].Month() != time.March {
			t.Errorf("第 %d 个主日期望 3 月 %d 日，实际=%v", i, day, got[i])
		}
		if got[i].Weekday() != time.Sunday {
			t.Errorf("%v 不是主日", got[i])
		}
	}
}

func TestEnumerateSundays_StartOnSunday(t *testing.T) {
	// 起点本身是主日时应包含
	got := EnumerateSundays(mkDate(2024, 3, 3), mkDate(2024, 3, 3))
	if len(got) != 1 || got[0].Day() != 3 {
		t.Errorf("起点为主日的单日区间应返回该主日，实际=%v", got)
	}
}

func TestEnumerateSundays_NoSundayInRange(t *testing.T) {
	// 2024-03-04（周一）~ 03-09（周六）之间没有主日
	got := EnumerateSundays(mkDate(2024, 3, 4), mkDate(2024, 3, 9))
	if got == nil {
		t.Fatal("应返回空切片而非 nil")
	}
	if len(got) != 0 {
		t.Errorf("期望 0 个主日，实际=%v", got)
	}
}

func TestEnumerateSundays_EndBeforeStart(t *testing.T) {
	got := EnumerateSundays(mkDate(2024, 3, 31), mkDate(2024, 3, 1))
	if got == nil || len(got) != 0 {
		t.Errorf("倒置区间应返回空切片，实际=%v", got)
	}
}

func TestEnumerateSundays_IgnoresTimeOfDay(t *testing.T) {
	// 带时分秒的输入应归一化为日期
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 1, 0, time.UTC)
	got := EnumerateSundays(start, end)
	if len(got) != 5 {
		t.Errorf("期望 5 个主日，实际=%d", len(got))
	}
}

func TestEnumerateSundays_LeapFebruary(t *testing.T) {
	// 2024 年 2 月为闰月 29 天，主日为 4, 11, 18, 25
	got := EnumerateSundays(mkDate(2024, 2, 1), mkDate(2024, 2, 29))

	want := []int{4, 11, 18, 25}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 个主日，实际=%d", len(want), len(got))
	}
	for i, day := range want {
		if got[i].Day() != day {
			t.Errorf("第 %d 个主日期望 2 月 %d 日，实际=%v", i, day, got[i])
		}
	}
}

func TestEnumerateSundays_AscendingWeekApart(t *testing.T) {
	got := EnumerateSundays(mkDate(2026, 1, 1), mkDate(2026, 3, 31))
	for i := 1; i < len(got); i++ {
		if got[i].Sub(got[i-1]) != 7*24*time.Hour {
			t.Errorf("相邻主日应间隔 7 天：%v → %v", got[i-1], got[i])
		}
	}
}

// ── MonthOverlapsRange ──

func TestMonthOverlapsRange(t *testing.T) {
	r := &DateRange{Start: mkDate(2026, 3, 10), End: mkDate(2026, 6, 30)}

	cases := []struct {
		year  int
		month int
		want  bool
	}{
		{2026, 2, false}, // 学期前
		{2026, 3, true},  // 部分重叠
		{2026, 5, true},  // 完全包含
		{2026, 6, true},  // 末月
		{2026, 7, false}, // 学期后
		{2026, 0, false}, // 非法月份
	}

	for _, tc := range cases {
		if got := MonthOverlapsRange(tc.year, tc.month, r); got != tc.want {
			t.Errorf("MonthOverlapsRange(%d, %d) 期望 %v，实际 %v", tc.year, tc.month, tc.want, got)
		}
	}

	if MonthOverlapsRange(2026, 3, nil) {
		t.Error("nil 区间应返回 false")
	}
}
