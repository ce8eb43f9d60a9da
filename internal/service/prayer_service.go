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

// ErrPrayerNotFound 代祷请求不存在
var ErrPrayerNotFound = errors.New("代祷请求不存在")

// recentPrayerCount 汇总接口返回的最近代祷条数
const recentPrayerCount = 5

// PrayerService 代祷业务接口
type PrayerService interface {
	Create(ctx context.Context, operatorID string, req *dto.CreatePrayerRequest) (*dto.PrayerResponse, error)
	Get(ctx context.Context, id string) (*dto.PrayerResponse, error)
	List(ctx context.Context, req *dto.ListPrayersRequest) ([]dto.PrayerResponse, int64, error)
	Update(ctx context.Context, id, operatorID string, req *dto.UpdatePrayerRequest) (*dto.PrayerResponse, error)
	Delete(ctx context.Context, id, operatorID string) error
	Summary(ctx context.Context) (*dto.PrayerSummaryResponse, error)
}

type prayerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPrayerService 创建 PrayerService 实例
func NewPrayerService(repo *repository.Repository, logger *zap.Logger) PrayerService {
	return &prayerService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *prayerService) Create(ctx context.Context, operatorID string, req *dto.CreatePrayerRequest) (*dto.PrayerResponse, error) {
	if _, err := s.repo.Member.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Error(err))
		return nil, err
	}

	prayer := &model.PrayerRequest{
		MemberID: req.MemberID,
		Content:  req.Content,
	}
	prayer.CreatedBy = &operatorID
	prayer.UpdatedBy = &operatorID

	if err := s.repo.Prayer.Create(ctx, prayer); err != nil {
		s.logger.Error("创建代祷请求失败", zap.Error(err))
		return nil, err
	}

	return toPrayerResponse(prayer), nil
}

// ────────────────────── Get / List ──────────────────────

func (s *prayerService) Get(ctx context.Context, id string) (*dto.PrayerResponse, error) {
	prayer, err := s.repo.Prayer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrayerNotFound
		}
		s.logger.Error("查询代祷请求失败", zap.Error(err))
		return nil, err
	}
	return toPrayerResponse(prayer), nil
}

func (s *prayerService) List(ctx context.Context, req *dto.ListPrayersRequest) ([]dto.PrayerResponse, int64, error) {
	prayers, total, err := s.repo.Prayer.List(ctx, repository.PrayerFilter{
		MemberID: req.MemberID,
		CellID:   req.CellID,
		Answered: req.Answered,
	}, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询代祷列表失败", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.PrayerResponse, 0, len(prayers))
	for i := range prayers {
		resp = append(resp, *toPrayerResponse(&prayers[i]))
	}
	return resp, total, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新代祷请求
// is_answered 从 false 变为 true 时记录应答时间，反向变更时清除
func (s *prayerService) Update(ctx context.Context, id, operatorID string, req *dto.UpdatePrayerRequest) (*dto.PrayerResponse, error) {
	prayer, err := s.repo.Prayer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrayerNotFound
		}
		s.logger.Error("查询代祷请求失败", zap.Error(err))
		return nil, err
	}

	if req.Content != nil {
		prayer.Content = *req.Content
	}
	if req.IsAnswered != nil && *req.IsAnswered != prayer.IsAnswered {
		prayer.IsAnswered = *req.IsAnswered
		if prayer.IsAnswered {
			now := time.Now()
			prayer.AnsweredAt = &now
		} else {
			prayer.AnsweredAt = nil
		}
	}
	prayer.Version++
	prayer.UpdatedBy = &operatorID

	if err := s.repo.Prayer.Update(ctx, prayer); err != nil {
		s.logger.Error("更新代祷请求失败", zap.Error(err))
		return nil, err
	}

	return toPrayerResponse(prayer), nil
}

// ────────────────────── Delete ──────────────────────

func (s *prayerService) Delete(ctx context.Context, id, operatorID string) error {
	if _, err := s.repo.Prayer.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPrayerNotFound
		}
		s.logger.Error("查询代祷请求失败", zap.Error(err))
		return err
	}

	if err := s.repo.Prayer.Delete(ctx, id, operatorID); err != nil {
		s.logger.Error("删除代祷请求失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Summary ──────────────────────

func (s *prayerService) Summary(ctx context.Context) (*dto.PrayerSummaryResponse, error) {
	total, answered, err := s.repo.Prayer.CountByAnswered(ctx)
	if err != nil {
		s.logger.Error("统计代祷请求失败", zap.Error(err))
		return nil, err
	}

	recent, _, err := s.repo.Prayer.List(ctx, repository.PrayerFilter{}, 0, recentPrayerCount)
	if err != nil {
		s.logger.Error("查询最近代祷失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.PrayerSummaryResponse{
		Total:    total,
		Answered: answered,
		Open:     total - answered,
		Recent:   make([]dto.PrayerResponse, 0, len(recent)),
	}
	for i := range recent {
		resp.Recent = append(resp.Recent, *toPrayerResponse(&recent[i]))
	}
	return resp, nil
}

// ── 内部辅助方法 ──

func toPrayerResponse(p *model.PrayerRequest) *dto.PrayerResponse {
	resp := &dto.PrayerResponse{
		ID:         p.PrayerRequestID,
		MemberID:   p.MemberID,
		Content:    p.Content,
		IsAnswered: p.IsAnswered,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.AnsweredAt != nil {
		answeredAt := p.AnsweredAt.Format(time.RFC3339)
		resp.AnsweredAt = &answeredAt
	}
	if p.Member != nil {
		resp.MemberName = p.Member.Name
	}
	return resp
}
