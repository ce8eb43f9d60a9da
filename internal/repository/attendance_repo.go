package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seouldream/backend/internal/model"
)

// AttendanceFilter 考勤记录查询条件
type AttendanceFilter struct {
	StartDate time.Time
	EndDate   time.Time
	MemberID  string
	CellID    string
	Status    string
}

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	Upsert(ctx context.Context, record *model.AttendanceRecord) error
	GetByID(ctx context.Context, id string) (*model.AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter) ([]model.AttendanceRecord, error)
	Update(ctx context.Context, record *model.AttendanceRecord) error
	Delete(ctx context.Context, id string) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Upsert 按 (member_id, attendance_date) 唯一键插入或覆盖
func (r *attendanceRepo) Upsert(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "member_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "memo", "updated_at", "updated_by",
			}),
		}).
		Create(record).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("attendance_id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) List(ctx context.Context, filter AttendanceFilter) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord

	db := r.db.WithContext(ctx).
		Where("attendance_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	if filter.MemberID != "" {
		db = db.Where("member_id = ?", filter.MemberID)
	}
	if filter.CellID != "" {
		// 按小组过滤时联查成员表
		db = db.Where("member_id IN (?)",
			r.db.WithContext(ctx).Model(&model.Member{}).Select("member_id").Where("cell_id = ?", filter.CellID))
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	err := db.Preload("Member").
		Order("attendance_date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) Update(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.AttendanceRecord{}).Error
}
