/*
 * @Description: 账户自助操作控制器
 * @Author: 安知鱼
 * @Date: 2025-06-15 13:03:21
 * @LastEditTime: 2025-08-31 01:48:36
 * @LastEditors: 安知鱼
 */
package account_handler

import (
	"log"
	"net/http"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/response"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/account"
	service_auth "github.com/anzhiyu-c/qingyu-admin/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// AccountHandler 封装账户自助操作的控制器方法
type AccountHandler struct {
	accountSvc account.Service
	tokenSvc   service_auth.TokenService
}

// NewAccountHandler 是 AccountHandler 的构造函数
func NewAccountHandler(accountSvc account.Service, tokenSvc service_auth.TokenService) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		tokenSvc:   tokenSvc,
	}
}

// currentUserID 从 Gin 上下文取出 JWT 中间件注入的用户身份。
func currentUserID(c *gin.Context) (uint, bool) {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0, false
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return 0, false
	}
	userID, err := idgen.DecodeUserPublicID(claims.UserID)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// Register 注册一个新账户
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.Register(c.Request.Context(), &req))
}

// Login 用户登录，成功时返回会话令牌
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResult(c, h.accountSvc.Login(c.Request.Context(), &req), http.StatusOK)
}

// RefreshToken 用刷新令牌换取新的访问令牌
func (h *AccountHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	accessToken, err := h.tokenSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}
	response.Success(c, dto.TokenResponse{AccessToken: accessToken, RefreshToken: req.RefreshToken}, "ok")
}

// GetCurrentUser 获取当前登录用户的信息
func (h *AccountHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	response.FromResult(c, h.accountSvc.GetUserInfo(c.Request.Context(), userID), http.StatusOK)
}

// Logout 在无状态 API 上不受支持，端点保留给旧客户端，
// 服务层的错误按 500 透出。
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.accountSvc.Logout(); err != nil {
		log.Printf("[AccountHandler] 登出调用失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, constant.MsgUnknown)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmAccount 通过邮件里的确认码激活账户
func (h *AccountHandler) ConfirmAccount(c *gin.Context) {
	var req dto.ConfirmAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.ConfirmAccount(c.Request.Context(), &req))
}

// InitiateEmailChange 发起两步邮箱变更
func (h *AccountHandler) InitiateEmailChange(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	var req dto.InitiateEmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.InitiateEmailChange(c.Request.Context(), userID, &req))
}

// PerformEmailChange 用邮件里的确认码完成邮箱变更
func (h *AccountHandler) PerformEmailChange(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	var req dto.PerformEmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.PerformEmailChange(c.Request.Context(), userID, &req))
}

// ChangePassword 已登录用户修改密码
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.ChangePassword(c.Request.Context(), userID, &req))
}

// ForgotPassword 匿名请求密码重置邮件，始终返回 202
func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResult(c, h.accountSvc.ForgotPassword(c.Request.Context(), &req), http.StatusAccepted)
}

// ResetPassword 用邮件里的重置码设置新密码
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.MsgUnprocessable)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.ResetPassword(c.Request.Context(), &req))
}

// GetPersonalData 导出当前用户的个人数据，以 JSON 附件返回
func (h *AccountHandler) GetPersonalData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	res := h.accountSvc.GetPersonalData(c.Request.Context(), userID)
	if !res.WasSuccessful() {
		response.Fail(c, response.Status(res.Err), res.Message)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="PersonalData.json"`)
	c.Data(http.StatusOK, "application/json", res.Value)
}

// DeleteAccount 注销当前用户的账户
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
		return
	}

	response.FromResultNoContent(c, h.accountSvc.DeleteAccount(c.Request.Context(), userID))
}
