package service

import (
	"go.uber.org/zap"

	"seouldream/backend/internal/repository"
	"seouldream/backend/pkg/jwt"
	"seouldream/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Member     MemberService
	Cell       CellService
	Semester   SemesterService
	Attendance AttendanceService
	Statistics StatisticsService
	Prayer     PrayerService
	Export     ExportService
}

// NewService 创建 Service 聚合
// rdb 为 nil 时认证模块降级运行（登出不再使旧 Token 失效）
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	stats := NewStatisticsService(repo, logger)

	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, logger),
		Member:     NewMemberService(repo, logger),
		Cell:       NewCellService(repo, logger),
		Semester:   NewSemesterService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Statistics: stats,
		Prayer:     NewPrayerService(repo, logger),
		Export:     NewExportService(stats, logger),
	}
}
