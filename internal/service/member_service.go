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
	pkgerrors "seouldream/backend/pkg/errors"
)

// ── 成员模块业务错误 ──

var (
	ErrMemberNotFound = errors.New("成员不存在")
	ErrCellNotFound   = errors.New("小组不存在")
)

// MemberService 成员业务接口
type MemberService interface {
	Create(ctx context.Context, operatorID string, req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	Get(ctx context.Context, id string) (*dto.MemberResponse, error)
	List(ctx context.Context, req *dto.ListMembersRequest) ([]dto.MemberResponse, int64, error)
	Update(ctx context.Context, id, operatorID string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	Delete(ctx context.Context, id, operatorID string) error
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *memberService) Create(ctx context.Context, operatorID string, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if req.CellID != nil {
		if err := s.ensureCellExists(ctx, *req.CellID); err != nil {
			return nil, err
		}
	}

	member := &model.Member{
		Name:     req.Name,
		Phone:    req.Phone,
		CellID:   req.CellID,
		JoinYear: req.JoinYear,
		IsActive: true,
	}
	member.CreatedBy = &operatorID
	member.UpdatedBy = &operatorID

	if err := s.repo.Member.Create(ctx, member); err != nil {
		s.logger.Error("创建成员失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("成员已创建", zap.String("member_id", member.MemberID))
	return toMemberResponse(member), nil
}

// ────────────────────── Get ──────────────────────

func (s *memberService) Get(ctx context.Context, id string) (*dto.MemberResponse, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Error(err))
		return nil, err
	}
	return toMemberResponse(member), nil
}

// ────────────────────── List ──────────────────────

func (s *memberService) List(ctx context.Context, req *dto.ListMembersRequest) ([]dto.MemberResponse, int64, error) {
	members, total, err := s.repo.Member.List(ctx, repository.MemberFilter{
		CellID: req.CellID,
		Active: req.Active,
	}, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, *toMemberResponse(&members[i]))
	}
	return resp, total, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新成员信息
// 携带 version 时执行乐观锁校验，版本不一致返回 ErrOptimisticLock
func (s *memberService) Update(ctx context.Context, id, operatorID string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Error(err))
		return nil, err
	}

	if req.Version != nil && *req.Version != member.Version {
		return nil, pkgerrors.ErrOptimisticLock
	}

	if req.CellID != nil && *req.CellID != "" {
		if err := s.ensureCellExists(ctx, *req.CellID); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = req.Phone
	}
	if req.CellID != nil {
		member.CellID = req.CellID
	}
	if req.JoinYear != nil {
		member.JoinYear = req.JoinYear
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.Version++
	member.UpdatedBy = &operatorID

	if err := s.repo.Member.Update(ctx, member); err != nil {
		s.logger.Error("更新成员失败", zap.Error(err))
		return nil, err
	}

	return toMemberResponse(member), nil
}

// ────────────────────── Delete ──────────────────────

func (s *memberService) Delete(ctx context.Context, id, operatorID string) error {
	if _, err := s.repo.Member.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Error(err))
		return err
	}

	if err := s.repo.Member.Delete(ctx, id, operatorID); err != nil {
		s.logger.Error("删除成员失败", zap.Error(err))
		return err
	}

	s.logger.Info("成员已删除", zap.String("member_id", id), zap.String("operator", operatorID))
	return nil
}

// ── 内部辅助方法 ──

func (s *memberService) ensureCellExists(ctx context.Context, cellID string) error {
	if _, err := s.repo.Cell.GetByID(ctx, cellID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCellNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return err
	}
	return nil
}

func toMemberResponse(m *model.Member) *dto.MemberResponse {
	resp := &dto.MemberResponse{
		ID:        m.MemberID,
		Name:      m.Name,
		Phone:     m.Phone,
		CellID:    m.CellID,
		JoinYear:  m.JoinYear,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.Cell != nil {
		resp.CellName = &m.Cell.Name
	}
	return resp
}
