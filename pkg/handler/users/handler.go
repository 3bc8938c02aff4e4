/*
 * @Description: 用户管理控制器（仅限管理员）
 * @Author: 安知鱼
 * @Date: 2025-06-15 13:18:40
 * @LastEditTime: 2025-08-31 01:58:02
 * @LastEditors: 安知鱼
 */
package users_handler

import (
	"net/http"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/response"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/useradmin"

	"github.com/gin-gonic/gin"
)

// UsersHandler 封装用户管理的控制器方法，所有路由都要求管理员权限
type UsersHandler struct {
	adminSvc useradmin.Service
}

// NewUsersHandler 是 UsersHandler 的构造函数
func NewUsersHandler(adminSvc useradmin.Service) *UsersHandler {
	return &UsersHandler{adminSvc: adminSvc}
}

// List 分页列出所有用户
func (h *UsersHandler) List(c *gin.Context) {
	var filter repository.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResult(c, h.adminSvc.GetAllUsers(c.Request.Context(), &filter), http.StatusOK)
}

// Get 按公共 ID 获取单个用户
func (h *UsersHandler) Get(c *gin.Context) {
	response.FromResult(c, h.adminSvc.GetUserData(c.Request.Context(), c.Param("id")), http.StatusOK)
}

// UpdateEmail 管理员替用户发起邮箱变更
func (h *UsersHandler) UpdateEmail(c *gin.Context) {
	var req dto.UserChangeEmailDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.adminSvc.UpdateUserEmail(c.Request.Context(), &req))
}

// UpdatePassword 管理员直接重置用户密码
func (h *UsersHandler) UpdatePassword(c *gin.Context) {
	var req dto.UserChangePasswordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.adminSvc.UpdateUserPassword(c.Request.Context(), &req))
}

// GetRoles 返回系统中可分配的角色名列表
func (h *UsersHandler) GetRoles(c *gin.Context) {
	response.FromResult(c, h.adminSvc.GetAvailableRoles(c.Request.Context()), http.StatusOK)
}

// UpdateRoles 整体替换用户的角色集合
func (h *UsersHandler) UpdateRoles(c *gin.Context) {
	var req dto.UserUpdateRolesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.adminSvc.UpdateUserRoles(c.Request.Context(), &req))
}
