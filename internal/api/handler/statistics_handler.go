package handler

import (
	"github.com/gin-gonic/gin"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/service"
	"seouldream/backend/pkg/response"
)

// StatisticsHandler 统计模块 HTTP 处理器
type StatisticsHandler struct {
	statsSvc service.StatisticsService
}

// NewStatisticsHandler 创建 StatisticsHandler
func NewStatisticsHandler(statsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsSvc: statsSvc}
}

// AttendanceMatrix 考勤矩阵
// GET /api/v1/statistics/attendance/matrix
//
// 过滤条件不完整时返回 range=null 的空矩阵，不报错
func (h *StatisticsHandler) AttendanceMatrix(c *gin.Context) {
	var req dto.AttendanceMatrixRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	matrix, err := h.statsSvc.AttendanceMatrix(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, matrix)
}

// AttendanceSummary 考勤汇总卡片
// GET /api/v1/statistics/attendance/summary
func (h *StatisticsHandler) AttendanceSummary(c *gin.Context) {
	var req dto.AttendanceMatrixRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	summary, err := h.statsSvc.AttendanceSummary(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
