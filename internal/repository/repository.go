package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User       UserRepository
	Member     MemberRepository
	Cell       CellRepository
	Semester   SemesterRepository
	Attendance AttendanceRepository
	Prayer     PrayerRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		User:       NewUserRepo(db),
		Member:     NewMemberRepo(db),
		Cell:       NewCellRepo(db),
		Semester:   NewSemesterRepo(db),
		Attendance: NewAttendanceRepo(db),
		Prayer:     NewPrayerRepo(db),
	}
}

// BeginTx 开启事务，返回事务连接
// 未持有数据库连接时（如注入了自定义实现的聚合）返回 nil，
// 调用方据此降级为非事务执行
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到事务连接的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
