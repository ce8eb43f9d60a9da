package repository

import (
	"context"

	"gorm.io/gorm"

	"seouldream/backend/internal/model"
)

// PrayerFilter 代祷列表过滤条件
type PrayerFilter struct {
	MemberID string
	CellID   string
	Answered *bool
}

// PrayerRepository 代祷请求数据访问接口
type PrayerRepository interface {
	Create(ctx context.Context, prayer *model.PrayerRequest) error
	GetByID(ctx context.Context, id string) (*model.PrayerRequest, error)
	List(ctx context.Context, filter PrayerFilter, offset, limit int) ([]model.PrayerRequest, int64, error)
	Update(ctx context.Context, prayer *model.PrayerRequest) error
	Delete(ctx context.Context, id string, deletedBy string) error
	CountByAnswered(ctx context.Context) (total, answered int64, err error)
}

type prayerRepo struct {
	db *gorm.DB
}

// NewPrayerRepo 创建 PrayerRepository 实例
func NewPrayerRepo(db *gorm.DB) PrayerRepository {
	return &prayerRepo{db: db}
}

func (r *prayerRepo) Create(ctx context.Context, prayer *model.PrayerRequest) error {
	return r.db.WithContext(ctx).Create(prayer).Error
}

func (r *prayerRepo) GetByID(ctx context.Context, id string) (*model.PrayerRequest, error) {
	var prayer model.PrayerRequest
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("prayer_request_id = ?", id).
		First(&prayer).Error
	if err != nil {
		return nil, err
	}
	return &prayer, nil
}

func (r *prayerRepo) List(ctx context.Context, filter PrayerFilter, offset, limit int) ([]model.PrayerRequest, int64, error) {
	var prayers []model.PrayerRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PrayerRequest{})
	if filter.MemberID != "" {
		db = db.Where("member_id = ?", filter.MemberID)
	}
	if filter.CellID != "" {
		db = db.Where("member_id IN (?)",
			r.db.Model(&model.Member{}).Select("member_id").Where("cell_id = ?", filter.CellID))
	}
	if filter.Answered != nil {
		db = db.Where("is_answered = ?", *filter.Answered)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Member").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&prayers).Error
	return prayers, total, err
}

func (r *prayerRepo) Update(ctx context.Context, prayer *model.PrayerRequest) error {
	return r.db.WithContext(ctx).Save(prayer).Error
}

func (r *prayerRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.PrayerRequest{}).
		Where("prayer_request_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *prayerRepo) CountByAnswered(ctx context.Context) (int64, int64, error) {
	var total, answered int64
	if err := r.db.WithContext(ctx).
		Model(&model.PrayerRequest{}).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).
		Model(&model.PrayerRequest{}).
		Where("is_answered = ?", true).
		Count(&answered).Error; err != nil {
		return 0, 0, err
	}
	return total, answered, nil
}
