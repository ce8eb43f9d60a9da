package model

// Member 教会成员表 — 对应 members
//
// 有效加入日期的推导规则（考勤统计使用）：
//   CreatedAt 存在 → CreatedAt；否则 JoinYear 的 1 月 1 日；两者皆无 → 2000-01-01 哨兵值
type Member struct {
	MemberID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"member_id"`
	Name     string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone    *string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	CellID   *string `gorm:"type:uuid"                                      json:"cell_id,omitempty"`
	JoinYear *int    `json:"join_year,omitempty"`
	IsActive bool    `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel

	// 关联
	Cell *Cell `gorm:"foreignKey:CellID;references:CellID" json:"cell,omitempty"`
}

// TableName 指定表名
func (Member) TableName() string { return "members" }
