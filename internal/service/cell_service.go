package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
)

// ErrCellHasMembers 小组下仍有成员时不允许删除
var ErrCellHasMembers = errors.New("小组下仍有成员，无法删除")

// CellService 小组业务接口
type CellService interface {
	Create(ctx context.Context, operatorID string, req *dto.CreateCellRequest) (*dto.CellResponse, error)
	Get(ctx context.Context, id string) (*dto.CellResponse, error)
	List(ctx context.Context) ([]dto.CellResponse, error)
	Roster(ctx context.Context, id string) ([]dto.MemberResponse, error)
	Update(ctx context.Context, id, operatorID string, req *dto.UpdateCellRequest) (*dto.CellResponse, error)
	Delete(ctx context.Context, id, operatorID string) error
}

type cellService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCellService 创建 CellService 实例
func NewCellService(repo *repository.Repository, logger *zap.Logger) CellService {
	return &cellService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *cellService) Create(ctx context.Context, operatorID string, req *dto.CreateCellRequest) (*dto.CellResponse, error) {
	cell := &model.Cell{
		Name:        req.Name,
		LeaderID:    req.LeaderID,
		Description: req.Description,
		IsActive:    true,
	}
	cell.CreatedBy = &operatorID
	cell.UpdatedBy = &operatorID

	if err := s.repo.Cell.Create(ctx, cell); err != nil {
		s.logger.Error("创建小组失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("小组已创建", zap.String("cell_id", cell.CellID))
	return s.toCellResponse(ctx, cell), nil
}

// ────────────────────── Get ──────────────────────

func (s *cellService) Get(ctx context.Context, id string) (*dto.CellResponse, error) {
	cell, err := s.repo.Cell.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCellNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, err
	}
	return s.toCellResponse(ctx, cell), nil
}

// ────────────────────── List ──────────────────────

func (s *cellService) List(ctx context.Context) ([]dto.CellResponse, error) {
	cells, err := s.repo.Cell.List(ctx)
	if err != nil {
		s.logger.Error("查询小组列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.CellResponse, 0, len(cells))
	for i := range cells {
		resp = append(resp, *s.toCellResponse(ctx, &cells[i]))
	}
	return resp, nil
}

// ────────────────────── Roster ──────────────────────

// Roster 小组成员名册（含停用成员）
func (s *cellService) Roster(ctx context.Context, id string) ([]dto.MemberResponse, error) {
	if _, err := s.repo.Cell.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCellNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, err
	}

	members, err := s.repo.Member.ListAll(ctx, repository.MemberFilter{CellID: id})
	if err != nil {
		s.logger.Error("查询小组成员失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, *toMemberResponse(&members[i]))
	}
	return resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *cellService) Update(ctx context.Context, id, operatorID string, req *dto.UpdateCellRequest) (*dto.CellResponse, error) {
	cell, err := s.repo.Cell.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCellNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		cell.Name = *req.Name
	}
	if req.LeaderID != nil {
		cell.LeaderID = req.LeaderID
	}
	if req.Description != nil {
		cell.Description = req.Description
	}
	if req.IsActive != nil {
		cell.IsActive = *req.IsActive
	}
	cell.Version++
	cell.UpdatedBy = &operatorID

	if err := s.repo.Cell.Update(ctx, cell); err != nil {
		s.logger.Error("更新小组失败", zap.Error(err))
		return nil, err
	}

	return s.toCellResponse(ctx, cell), nil
}

// ────────────────────── Delete ──────────────────────

func (s *cellService) Delete(ctx context.Context, id, operatorID string) error {
	if _, err := s.repo.Cell.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCellNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return err
	}

	count, err := s.repo.Member.CountByCell(ctx, id)
	if err != nil {
		s.logger.Error("统计小组成员失败", zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrCellHasMembers
	}

	if err := s.repo.Cell.Delete(ctx, id, operatorID); err != nil {
		s.logger.Error("删除小组失败", zap.Error(err))
		return err
	}

	s.logger.Info("小组已删除", zap.String("cell_id", id), zap.String("operator", operatorID))
	return nil
}

// ── 内部辅助方法 ──

func (s *cellService) toCellResponse(ctx context.Context, cell *model.Cell) *dto.CellResponse {
	count, err := s.repo.Member.CountByCell(ctx, cell.CellID)
	if err != nil {
		// 成员数查询失败不阻断主流程，按 0 返回
		s.logger.Warn("统计小组成员失败", zap.String("cell_id", cell.CellID), zap.Error(err))
		count = 0
	}

	return &dto.CellResponse{
		ID:          cell.CellID,
		Name:        cell.Name,
		LeaderID:    cell.LeaderID,
		Description: cell.Description,
		IsActive:    cell.IsActive,
		MemberCount: count,
		CreatedAt:   cell.CreatedAt.Format(time.RFC3339),
	}
}
