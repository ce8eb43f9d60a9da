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

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound  = errors.New("学期不存在")
	ErrNoActiveSemester  = errors.New("当前没有进行中的学期")
	ErrSemesterDateOrder = errors.New("学期结束日期不能早于开始日期")
	ErrSemesterArchived  = errors.New("已归档的学期不能设为当前学期")
)

// SemesterService 学期业务接口
type SemesterService interface {
	Create(ctx context.Context, operatorID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	Get(ctx context.Context, id string) (*dto.SemesterResponse, error)
	GetCurrent(ctx context.Context) (*dto.SemesterResponse, error)
	List(ctx context.Context, req *dto.ListSemestersRequest) ([]dto.SemesterResponse, error)
	Update(ctx context.Context, id, operatorID string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Activate(ctx context.Context, id, operatorID string) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id, operatorID string) error
	WorshipCalendar(ctx context.Context, id string) ([]byte, string, error)
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, operatorID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrSemesterDateOrder
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil || end.Before(start) {
		return nil, ErrSemesterDateOrder
	}

	semester := &model.Semester{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    "active",
	}
	semester.CreatedBy = &operatorID
	semester.UpdatedBy = &operatorID

	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("学期已创建",
		zap.String("semester_id", semester.SemesterID),
		zap.String("name", semester.Name))
	return toSemesterResponse(semester), nil
}

// ────────────────────── Get / GetCurrent / List ──────────────────────

func (s *semesterService) Get(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}
	return toSemesterResponse(semester), nil
}

func (s *semesterService) GetCurrent(ctx context.Context) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSemester
		}
		s.logger.Error("查询当前学期失败", zap.Error(err))
		return nil, err
	}
	return toSemesterResponse(semester), nil
}

func (s *semesterService) List(ctx context.Context, req *dto.ListSemestersRequest) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.List(ctx, req.ActiveOnly)
	if err != nil {
		s.logger.Error("查询学期列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		resp = append(resp, *toSemesterResponse(&semesters[i]))
	}
	return resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *semesterService) Update(ctx context.Context, id, operatorID string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		semester.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrSemesterDateOrder
		}
		semester.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrSemesterDateOrder
		}
		semester.EndDate = end
	}
	if semester.EndDate.Before(semester.StartDate) {
		return nil, ErrSemesterDateOrder
	}
	if req.Status != nil {
		semester.Status = *req.Status
		if *req.Status == "archived" {
			semester.IsActive = false
		}
	}
	semester.Version++
	semester.UpdatedBy = &operatorID

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("更新学期失败", zap.Error(err))
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── Activate ──────────────────────

// Activate 将指定学期设为当前学期
// 先清除其余学期的 is_active 再置位，两步在同一事务内完成
func (s *semesterService) Activate(ctx context.Context, id, operatorID string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}
	if semester.Status == "archived" {
		return nil, ErrSemesterArchived
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Semester.ClearActive(ctx); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("清除当前学期标记失败", zap.Error(err))
		return nil, err
	}

	semester.IsActive = true
	semester.Version++
	semester.UpdatedBy = &operatorID
	if err := txRepo.Semester.Update(ctx, semester); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("更新学期失败", zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("学期已设为当前学期",
		zap.String("semester_id", id),
		zap.String("operator", operatorID))
	return toSemesterResponse(semester), nil
}

// ────────────────────── Delete ──────────────────────

func (s *semesterService) Delete(ctx context.Context, id, operatorID string) error {
	if _, err := s.repo.Semester.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return err
	}

	if err := s.repo.Semester.Delete(ctx, id, operatorID); err != nil {
		s.logger.Error("删除学期失败", zap.Error(err))
		return err
	}

	s.logger.Info("学期已删除", zap.String("semester_id", id), zap.String("operator", operatorID))
	return nil
}

// ────────────────────── WorshipCalendar ──────────────────────

// WorshipCalendar 生成学期内全部主日礼拜的 iCalendar 数据
// 返回 (内容, 下载文件名, error)
func (s *semesterService) WorshipCalendar(ctx context.Context, id string) ([]byte, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, "", err
	}

	data := buildWorshipCalendar(semester)
	filename := semester.Name + ".ics"
	return data, filename, nil
}

// ── 内部辅助方法 ──

func toSemesterResponse(m *model.Semester) *dto.SemesterResponse {
	return &dto.SemesterResponse{
		ID:        m.SemesterID,
		Name:      m.Name,
		StartDate: m.StartDate.Format(dateLayout),
		EndDate:   m.EndDate.Format(dateLayout),
		IsActive:  m.IsActive,
		Status:    m.Status,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}
