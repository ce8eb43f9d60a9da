package model

// User 管理端账号表 — 对应 users
type User struct {
	UserID             string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name               string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email              string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash       string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role               string  `gorm:"type:varchar(20);not null;default:'member'"     json:"role"` // admin | leader | member
	CellID             *string `gorm:"type:uuid"                                      json:"cell_id,omitempty"`
	MustChangePassword bool    `gorm:"not null;default:false"                         json:"must_change_password"`
	VersionedModel

	// 关联
	Cell *Cell `gorm:"foreignKey:CellID;references:CellID" json:"cell,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
