package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/service"
	"seouldream/backend/pkg/response"
)

// CellHandler 小组模块 HTTP 处理器
type CellHandler struct {
	cellSvc service.CellService
}

// NewCellHandler 创建 CellHandler
func NewCellHandler(cellSvc service.CellService) *CellHandler {
	return &CellHandler{cellSvc: cellSvc}
}

// CreateCell 创建小组
// POST /api/v1/cells
func (h *CellHandler) CreateCell(c *gin.Context) {
	var req dto.CreateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	cell, err := h.cellSvc.Create(c.Request.Context(), operatorID, &req)
	if err != nil {
		h.handleCellError(c, err)
		return
	}

	response.Created(c, cell)
}

// GetCell 获取小组详情
// GET /api/v1/cells/:id
func (h *CellHandler) GetCell(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "小组ID不能为空")
		return
	}

	cell, err := h.cellSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleCellError(c, err)
		return
	}

	response.OK(c, cell)
}

// ListCells 获取小组列表
// GET /api/v1/cells
func (h *CellHandler) ListCells(c *gin.Context) {
	cells, err := h.cellSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": cells})
}

// GetRoster 获取小组成员名册
// GET /api/v1/cells/:id/members
func (h *CellHandler) GetRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "小组ID不能为空")
		return
	}

	members, err := h.cellSvc.Roster(c.Request.Context(), id)
	if err != nil {
		h.handleCellError(c, err)
		return
	}

	response.OK(c, gin.H{"list": members})
}

// UpdateCell 更新小组
// PUT /api/v1/cells/:id
func (h *CellHandler) UpdateCell(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "小组ID不能为空")
		return
	}

	var req dto.UpdateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	cell, err := h.cellSvc.Update(c.Request.Context(), id, operatorID, &req)
	if err != nil {
		h.handleCellError(c, err)
		return
	}

	response.OK(c, cell)
}

// DeleteCell 删除小组（软删除）
// DELETE /api/v1/cells/:id
func (h *CellHandler) DeleteCell(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "小组ID不能为空")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.cellSvc.Delete(c.Request.Context(), id, operatorID); err != nil {
		h.handleCellError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCellError 统一处理小组模块业务错误
func (h *CellHandler) handleCellError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCellNotFound):
		response.NotFound(c, 13001, "小组不存在")
	case errors.Is(err, service.ErrCellHasMembers):
		response.Error(c, http.StatusConflict, 13002, "小组下仍有成员，无法删除")
	default:
		response.InternalError(c)
	}
}
