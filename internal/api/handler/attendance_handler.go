package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/service"
	"seouldream/backend/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// CheckIn 主日批量签到
// POST /api/v1/attendance/check
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.CheckIn(c.Request.Context(), operatorID, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAttendance 查询考勤记录
// GET /api/v1/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	var req dto.ListAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// UpdateAttendance 更新考勤记录
// PUT /api/v1/attendance/:id
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤记录ID不能为空")
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceSvc.Update(c.Request.Context(), id, operatorID, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteAttendance 删除考勤记录
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤记录ID不能为空")
		return
	}

	if err := h.attendanceSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, 15001, "考勤记录不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15002, "日期格式不正确")
	default:
		response.InternalError(c)
	}
}
