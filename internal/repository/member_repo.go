package repository

import (
	"context"

	"gorm.io/gorm"

	"seouldream/backend/internal/model"
)

// MemberFilter 成员列表过滤条件
type MemberFilter struct {
	CellID string
	Active *bool
}

// MemberRepository 成员数据访问接口
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
	List(ctx context.Context, filter MemberFilter, offset, limit int) ([]model.Member, int64, error)
	ListAll(ctx context.Context, filter MemberFilter) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id string, deletedBy string) error
	CountByCell(ctx context.Context, cellID string) (int64, error)
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Preload("Cell").
		Where("member_id = ?", id).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) applyFilter(db *gorm.DB, filter MemberFilter) *gorm.DB {
	if filter.CellID != "" {
		db = db.Where("cell_id = ?", filter.CellID)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}
	return db
}

func (r *memberRepo) List(ctx context.Context, filter MemberFilter, offset, limit int) ([]model.Member, int64, error) {
	var members []model.Member
	var total int64

	db := r.applyFilter(r.db.WithContext(ctx).Model(&model.Member{}), filter)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Cell").
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	return members, total, err
}

func (r *memberRepo) ListAll(ctx context.Context, filter MemberFilter) ([]model.Member, error) {
	var members []model.Member
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepo) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *memberRepo) CountByCell(ctx context.Context, cellID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("cell_id = ?", cellID).
		Count(&count).Error
	return count, err
}
