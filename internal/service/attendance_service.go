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

// ── 考勤模块业务错误 ──

var (
	ErrAttendanceNotFound = errors.New("考勤记录不存在")
	ErrInvalidDate        = errors.New("日期格式不正确")
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	CheckIn(ctx context.Context, operatorID string, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	List(ctx context.Context, req *dto.ListAttendanceRequest) ([]dto.AttendanceResponse, error)
	Update(ctx context.Context, id, operatorID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── CheckIn ──────────────────────

// CheckIn 主日批量签到
// 同一 (member, date) 已有记录时覆盖；不存在或已停用的成员跳过并计数
func (s *attendanceService) CheckIn(ctx context.Context, operatorID string, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	date = normalizeDate(date)

	// 有效成员集合：一次查询避免逐条回表
	active := true
	members, err := s.repo.Member.ListAll(ctx, repository.MemberFilter{Active: &active})
	if err != nil {
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return nil, err
	}
	valid := make(map[string]bool, len(members))
	for i := range members {
		valid[members[i].MemberID] = true
	}

	resp := &dto.CheckInResponse{Date: req.Date}
	for _, item := range req.Items {
		if !valid[item.MemberID] {
			resp.Skipped++
			continue
		}

		record := &model.AttendanceRecord{
			MemberID:       item.MemberID,
			AttendanceDate: date,
			Status:         item.Status,
			Memo:           item.Memo,
		}
		record.CreatedBy = &operatorID
		record.UpdatedBy = &operatorID

		if err := s.repo.Attendance.Upsert(ctx, record); err != nil {
			s.logger.Error("保存考勤记录失败",
				zap.String("member_id", item.MemberID),
				zap.Error(err))
			return nil, err
		}
		resp.Saved++
	}

	s.logger.Info("批量签到完成",
		zap.String("date", req.Date),
		zap.Int("saved", resp.Saved),
		zap.Int("skipped", resp.Skipped))
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context, req *dto.ListAttendanceRequest) ([]dto.AttendanceResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil || end.Before(start) {
		return nil, ErrInvalidDate
	}

	records, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		StartDate: start,
		EndDate:   end,
		MemberID:  req.MemberID,
		CellID:    req.CellID,
		Status:    req.Status,
	})
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, *toAttendanceResponse(&records[i]))
	}
	return resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *attendanceService) Update(ctx context.Context, id, operatorID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Memo != nil {
		record.Memo = req.Memo
	}
	record.UpdatedBy = &operatorID

	if err := s.repo.Attendance.Update(ctx, record); err != nil {
		s.logger.Error("更新考勤记录失败", zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(record), nil
}

// ────────────────────── Delete ──────────────────────

func (s *attendanceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Attendance.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return err
	}

	if err := s.repo.Attendance.Delete(ctx, id); err != nil {
		s.logger.Error("删除考勤记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toAttendanceResponse(r *model.AttendanceRecord) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:       r.AttendanceID,
		MemberID: r.MemberID,
		Date:     r.AttendanceDate.Format(dateLayout),
		Status:   r.Status,
		Memo:     r.Memo,
	}
	if r.Member != nil {
		resp.MemberName = r.Member.Name
	}
	return resp
}
