package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/service"
	"seouldream/backend/pkg/response"
)

// PrayerHandler 代祷模块 HTTP 处理器
type PrayerHandler struct {
	prayerSvc service.PrayerService
}

// NewPrayerHandler 创建 PrayerHandler
func NewPrayerHandler(prayerSvc service.PrayerService) *PrayerHandler {
	return &PrayerHandler{prayerSvc: prayerSvc}
}

// CreatePrayer 创建代祷请求
// POST /api/v1/prayers
func (h *PrayerHandler) CreatePrayer(c *gin.Context) {
	var req dto.CreatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	prayer, err := h.prayerSvc.Create(c.Request.Context(), operatorID, &req)
	if err != nil {
		h.handlePrayerError(c, err)
		return
	}

	response.Created(c, prayer)
}

// GetPrayer 获取代祷请求详情
// GET /api/v1/prayers/:id
func (h *PrayerHandler) GetPrayer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "代祷请求ID不能为空")
		return
	}

	prayer, err := h.prayerSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handlePrayerError(c, err)
		return
	}

	response.OK(c, prayer)
}

// ListPrayers 获取代祷列表（分页）
// GET /api/v1/prayers
func (h *PrayerHandler) ListPrayers(c *gin.Context) {
	var req dto.ListPrayersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	prayers, total, err := h.prayerSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, prayers, total, req.GetPage(), req.GetPageSize())
}

// UpdatePrayer 更新代祷请求
// PUT /api/v1/prayers/:id
func (h *PrayerHandler) UpdatePrayer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "代祷请求ID不能为空")
		return
	}

	var req dto.UpdatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	prayer, err := h.prayerSvc.Update(c.Request.Context(), id, operatorID, &req)
	if err != nil {
		h.handlePrayerError(c, err)
		return
	}

	response.OK(c, prayer)
}

// DeletePrayer 删除代祷请求（软删除）
// DELETE /api/v1/prayers/:id
func (h *PrayerHandler) DeletePrayer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "代祷请求ID不能为空")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.prayerSvc.Delete(c.Request.Context(), id, operatorID); err != nil {
		h.handlePrayerError(c, err)
		return
	}

	response.OK(c, nil)
}

// PrayerSummary 代祷汇总
// GET /api/v1/prayers/summary
func (h *PrayerHandler) PrayerSummary(c *gin.Context) {
	summary, err := h.prayerSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// handlePrayerError 统一处理代祷模块业务错误
func (h *PrayerHandler) handlePrayerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPrayerNotFound):
		response.NotFound(c, 17001, "代祷请求不存在")
	case errors.Is(err, service.ErrMemberNotFound):
		response.BadRequest(c, 17002, "成员不存在")
	default:
		response.InternalError(c)
	}
}
