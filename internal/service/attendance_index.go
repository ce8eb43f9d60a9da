package service

import (
	"time"

	"seouldream/backend/internal/model"
)

// ── 考勤索引与出席资格 ──────────────────────────────────────
//
// 职责：把平铺的考勤记录整理为 (成员, 主日) → 状态 的查找索引，
// 并按成员的有效加入日期折算其"应出席主日数"。
//
// 设计决策：
//   - 状态不是 PRESENT / ABSENT 的记录视为无信息，直接丢弃，
//     属于数据质量问题而非控制流错误
//   - 同一 (成员, 日期) 出现多条记录时后写覆盖先写（上游不去重，
//     这里定义确定的决胜规则）
//   - 未签到数为估算值：Σ 各成员应出席主日数 − 已记录条数，下限 0
// ─────────────────────────────────────────────────────────────

// memberJoinSentinel 成员加入日期完全未知时的哨兵值
var memberJoinSentinel = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// BuildAttendanceIndex 构建 (memberID, 日期) → 状态 索引
// 缺成员、缺日期或状态不合法的记录被静默剔除
func BuildAttendanceIndex(records []model.AttendanceRecord) map[string]string {
	index := make(map[string]string, len(records))
	for i := range records {
		r := &records[i]
		if r.MemberID == "" || r.AttendanceDate.IsZero() {
			continue
		}
		if r.Status != model.AttendanceStatusPresent && r.Status != model.AttendanceStatusAbsent {
			continue
		}
		index[attendanceKey(r.MemberID, r.AttendanceDate.Format(dateLayout))] = r.Status
	}
	return index
}

// attendanceKey 索引键：memberID + "|" + "YYYY-MM-DD"
func attendanceKey(memberID, dateKey string) string {
	return memberID + "|" + dateKey
}

// EffectiveJoinDate 成员的有效加入日期
// CreatedAt 存在 → CreatedAt；否则 JoinYear 的 1 月 1 日；两者皆无 → 哨兵值
func EffectiveJoinDate(m *model.Member) time.Time {
	if !m.CreatedAt.IsZero() {
		return normalizeDate(m.CreatedAt)
	}
	if m.JoinYear != nil && *m.JoinYear > 0 {
		return time.Date(*m.JoinYear, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return memberJoinSentinel
}

// CountEligibleSundays 统计加入日期当天及之后的主日数
func CountEligibleSundays(joinDate time.Time, sundays []time.Time) int {
	joinDate = normalizeDate(joinDate)
	count := 0
	for _, s := range sundays {
		if !s.Before(joinDate) {
			count++
		}
	}
	return count
}

// EstimateUnchecked 估算未签到数：Σ 应出席主日数 − 已记录条数，下限 0
func EstimateUnchecked(eligibleSum, recordedCount int) int {
	unchecked := eligibleSum - recordedCount
	if unchecked < 0 {
		return 0
	}
	return unchecked
}
