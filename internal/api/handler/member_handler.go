package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/service"
	pkgerrors "seouldream/backend/pkg/errors"
	"seouldream/backend/pkg/response"
)

// MemberHandler 成员模块 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// CreateMember 创建成员
// POST /api/v1/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	member, err := h.memberSvc.Create(c.Request.Context(), operatorID, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.Created(c, member)
}

// GetMember 获取成员详情
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	member, err := h.memberSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// ListMembers 获取成员列表（分页）
// GET /api/v1/members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req dto.ListMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	members, total, err := h.memberSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, members, total, req.GetPage(), req.GetPageSize())
}

// UpdateMember 更新成员
// PUT /api/v1/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	member, err := h.memberSvc.Update(c.Request.Context(), id, operatorID, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// DeleteMember 删除成员（软删除）
// DELETE /api/v1/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), id, operatorID); err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMemberError 统一处理成员模块业务错误
func (h *MemberHandler) handleMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 12001, "成员不存在")
	case errors.Is(err, service.ErrCellNotFound):
		response.BadRequest(c, 12002, "小组不存在")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Error(c, http.StatusConflict, 12003, "数据已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
