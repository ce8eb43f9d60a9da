package repository

import (
	"context"

	"gorm.io/gorm"

	"seouldream/backend/internal/model"
)

// CellRepository 小组数据访问接口
type CellRepository interface {
	Create(ctx context.Context, cell *model.Cell) error
	GetByID(ctx context.Context, id string) (*model.Cell, error)
	List(ctx context.Context) ([]model.Cell, error)
	Update(ctx context.Context, cell *model.Cell) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type cellRepo struct {
	db *gorm.DB
}

// NewCellRepo 创建 CellRepository 实例
func NewCellRepo(db *gorm.DB) CellRepository {
	return &cellRepo{db: db}
}

func (r *cellRepo) Create(ctx context.Context, cell *model.Cell) error {
	return r.db.WithContext(ctx).Create(cell).Error
}

func (r *cellRepo) GetByID(ctx context.Context, id string) (*model.Cell, error) {
	var cell model.Cell
	err := r.db.WithContext(ctx).
		Where("cell_id = ?", id).
		First(&cell).Error
	if err != nil {
		return nil, err
	}
	return &cell, nil
}

func (r *cellRepo) List(ctx context.Context) ([]model.Cell, error) {
	var cells []model.Cell
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&cells).Error
	return cells, err
}

func (r *cellRepo) Update(ctx context.Context, cell *model.Cell) error {
	return r.db.WithContext(ctx).Save(cell).Error
}

func (r *cellRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Cell{}).
		Where("cell_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
