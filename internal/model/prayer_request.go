package model

import "time"

// PrayerRequest 代祷请求表 — 对应 prayer_requests
type PrayerRequest struct {
	PrayerRequestID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"prayer_request_id"`
	MemberID        string     `gorm:"type:uuid;not null"                             json:"member_id"`
	Content         string     `gorm:"not null"                                       json:"content"`
	IsAnswered      bool       `gorm:"not null;default:false"                         json:"is_answered"`
	AnsweredAt      *time.Time `json:"answered_at,omitempty"`
	VersionedModel

	// 关联
	Member *Member `gorm:"foreignKey:MemberID;references:MemberID" json:"member,omitempty"`
}

// TableName 指定表名
func (PrayerRequest) TableName() string { return "prayer_requests" }
