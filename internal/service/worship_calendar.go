package service

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"seouldream/backend/internal/model"
)

// ── 主日礼拜日历生成 ──────────────────────────────────────────
//
// 职责：将一个学期内的全部主日生成为标准 iCalendar (RFC 5545) 内容，
// 供成员订阅或导入个人日历。
//
// 设计决策：
//   - 每个主日生成一个独立 VEVENT，不使用 RRULE（学期裁剪后的
//     主日序列本身就是枚举结果，逐个事件更直观且无需处理 EXDATE）
//   - 礼拜时间固定为首尔时间上午 11:00-12:30
//   - UID 由学期 ID 与日期拼接，重复导入时日历客户端按 UID 去重
// ─────────────────────────────────────────────────────────────

const (
	worshipStartHour    = 11
	worshipDuration     = 90 * time.Minute
	seoulTimezone       = "Asia/Seoul"
	calendarProductID   = "-//SeoulDream//Worship Calendar//KO"
	worshipEventSummary = "주일예배"
)

// buildWorshipCalendar 生成学期主日礼拜的 ICS 内容
func buildWorshipCalendar(semester *model.Semester) []byte {
	loc, err := time.LoadLocation(seoulTimezone)
	if err != nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName(semester.Name)

	now := time.Now()
	for _, sunday := range EnumerateSundays(semester.StartDate, semester.EndDate) {
		uid := fmt.Sprintf("%s-%s@seouldream", semester.SemesterID, sunday.Format("20060102"))
		start := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), worshipStartHour, 0, 0, 0, loc)

		evt := cal.AddEvent(uid)
		evt.SetCreatedTime(now)
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(start.Add(worshipDuration))
		evt.SetSummary(worshipEventSummary)
		evt.SetDescription(semester.Name)
	}

	return []byte(cal.Serialize())
}
