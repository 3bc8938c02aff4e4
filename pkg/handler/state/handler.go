/*
 * @Description: 州参考数据控制器
 * @Author: 安知鱼
 * @Date: 2025-06-15 13:10:07
 * @LastEditTime: 2025-08-31 01:55:44
 * @LastEditors: 安知鱼
 */
package state_handler

import (
	"net/http"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/response"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StateHandler 封装州参考数据的控制器方法
type StateHandler struct {
	stateSvc state.Service
}

// NewStateHandler 是 StateHandler 的构造函数
func NewStateHandler(stateSvc state.Service) *StateHandler {
	return &StateHandler{stateSvc: stateSvc}
}

// List 分页列出州数据，支持搜索与排序
func (h *StateHandler) List(c *gin.Context) {
	var filter repository.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResult(c, h.stateSvc.List(c.Request.Context(), &filter), http.StatusOK)
}

// Get 按主键获取单个州
func (h *StateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, constant.MsgNotFound)
		return
	}

	response.FromResult(c, h.stateSvc.Get(c.Request.Context(), id), http.StatusOK)
}

// Add 创建一个新的州，返回生成的主键
func (h *StateHandler) Add(c *gin.Context) {
	var req dto.StateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResult(c, h.stateSvc.Add(c.Request.Context(), &req), http.StatusOK)
}

// Edit 更新一个已存在的州，路由里的主键优先于请求体
func (h *StateHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, constant.MsgNotFound)
		return
	}

	var req dto.StateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}
	req.SetPrimaryKey(id)

	response.FromResultNoContent(c, h.stateSvc.Edit(c.Request.Context(), &req))
}

// Delete 删除一个州，主键不存在时同样返回成功
func (h *StateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, constant.MsgNotFound)
		return
	}

	response.FromResultNoContent(c, h.stateSvc.Delete(c.Request.Context(), id))
}
