package model

import "time"

// ── 出席状态 ──

const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
)

// AttendanceRecord 主日出席记录表 — 对应 attendance_records
// (member_id, attendance_date) 唯一；同一主日重复签到按覆盖处理
type AttendanceRecord struct {
	AttendanceID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	MemberID       string    `gorm:"type:uuid;not null"                             json:"member_id"`
	AttendanceDate time.Time `gorm:"type:date;not null"                             json:"attendance_date"`
	Status         string    `gorm:"type:varchar(10);not null"                      json:"status"` // PRESENT | ABSENT
	Memo           *string   `json:"memo,omitempty"`
	BaseModel

	// 关联
	Member *Member `gorm:"foreignKey:MemberID;references:MemberID" json:"member,omitempty"`
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }
