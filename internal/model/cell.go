package model

// Cell 小组表（셀/목장） — 对应 cells
type Cell struct {
	CellID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"cell_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	LeaderID    *string `gorm:"type:uuid"                                      json:"leader_id,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

// TableName 指定表名
func (Cell) TableName() string { return "cells" }
