/*
 * @Description: 账户相关的请求/响应传输对象
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:44:08
 * @LastEditors: 安知鱼
 */
package dto

// RegisterRequest 是注册新账户的请求体。
type RegisterRequest struct {
	Honeypot

	Username        string `json:"username" binding:"required,max=32"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	AcceptTos       bool   `json:"acceptTos"`
}

// LoginRequest 是登录请求体，AccountName 可以是用户名或邮箱。
type LoginRequest struct {
	Honeypot

	AccountName string `json:"accountName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// TokenResponse 是登录成功后返回的会话令牌。
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ConfirmAccountRequest 是确认邮箱的请求体，
// UserID 与 VerificationCode 来自确认邮件中的链接。
type ConfirmAccountRequest struct {
	UserID           string `json:"userId" binding:"required"`
	VerificationCode string `json:"verificationCode" binding:"required"`
}

// InitiateEmailChangeRequest 发起两步邮箱变更，需重新验证密码。
type InitiateEmailChangeRequest struct {
	Email           string `json:"email" binding:"required,email"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// PerformEmailChangeRequest 完成邮箱变更，
// 新邮箱必须与之前发起变更时登记的待定邮箱一致。
type PerformEmailChangeRequest struct {
	NewEmail         string `json:"newEmail" binding:"required,email"`
	UserID           string `json:"userId" binding:"required"`
	VerificationCode string `json:"verificationCode" binding:"required"`
}

// ChangePasswordRequest 是已登录用户修改密码的请求体。
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8,max=64"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

// ForgotPasswordRequest 是忘记密码的请求体。
// 无论账户是否存在都返回成功，不向调用方泄露账户信息。
type ForgotPasswordRequest struct {
	Honeypot

	AccountName string `json:"accountName" binding:"required"`
}

// ResetPasswordRequest 通过邮件里的重置码设置新密码。
type ResetPasswordRequest struct {
	Honeypot

	UserID             string `json:"userId" binding:"required"`
	VerificationCode   string `json:"verificationCode" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8,max=64"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}
