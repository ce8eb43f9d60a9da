package handler

import "seouldream/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Member     *MemberHandler
	Cell       *CellHandler
	Semester   *SemesterHandler
	Attendance *AttendanceHandler
	Statistics *StatisticsHandler
	Prayer     *PrayerHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Member:     NewMemberHandler(svc.Member),
		Cell:       NewCellHandler(svc.Cell),
		Semester:   NewSemesterHandler(svc.Semester),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Statistics: NewStatisticsHandler(svc.Statistics),
		Prayer:     NewPrayerHandler(svc.Prayer),
		Export:     NewExportHandler(svc.Export),
	}
}
