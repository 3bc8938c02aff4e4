/*
 * @Description: 账户自助服务：注册、登录、邮箱确认与变更、密码管理
 * @Author: 安知鱼
 * @Date: 2025-06-28 10:14:02
 * @LastEditTime: 2025-08-31 00:12:44
 * @LastEditors: 安知鱼
 */
package account

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/security"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	authsvc "github.com/anzhiyu-c/qingyu-admin/pkg/service/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/utility"
)

// 登录失败锁定与签名令牌有效期
const (
	maxFailedAccessAttempts = 5
	lockoutDuration         = 5 * time.Minute

	confirmTokenTTL     = 24 * time.Hour
	emailChangeTokenTTL = 24 * time.Hour
	resetTokenTTL       = 30 * time.Minute
)

// Service 定义了账户自助操作的接口。
// 带 userID 参数的方法作用于已登录用户本人，
// userID 由认证中间件从访问令牌中解出。
type Service interface {
	Register(ctx context.Context, req *dto.RegisterRequest) result.Result[bool]
	Login(ctx context.Context, req *dto.LoginRequest) result.Result[*dto.TokenResponse]
	// Logout 永远返回错误：无状态 API 上登出本身就是非法操作。
	Logout() error
	GetUserInfo(ctx context.Context, userID uint) result.Result[*dto.UserDTO]
	ConfirmAccount(ctx context.Context, req *dto.ConfirmAccountRequest) result.Result[bool]
	InitiateEmailChange(ctx context.Context, userID uint, req *dto.InitiateEmailChangeRequest) result.Result[bool]
	PerformEmailChange(ctx context.Context, userID uint, req *dto.PerformEmailChangeRequest) result.Result[bool]
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) result.Result[bool]
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) result.Result[bool]
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) result.Result[bool]
	GetPersonalData(ctx context.Context, userID uint) result.Result[[]byte]
	DeleteAccount(ctx context.Context, userID uint) result.Result[bool]
}

type accountService struct {
	userRepo repository.UserRepository
	tokenSvc authsvc.TokenService
	emailSvc utility.EmailService
	eventBus *event.EventBus
}

// NewService 是 accountService 的构造函数
func NewService(
	userRepo repository.UserRepository,
	tokenSvc authsvc.TokenService,
	emailSvc utility.EmailService,
	eventBus *event.EventBus,
) Service {
	return &accountService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		emailSvc: emailSvc,
		eventBus: eventBus,
	}
}

func (s *accountService) Register(ctx context.Context, req *dto.RegisterRequest) result.Result[bool] {
	// 记录表单填写耗时，用于反垃圾分析
	log.Printf("表单提交耗时 %.2f 秒", req.CompletionSeconds())

	// 蜜罐命中时伪装成功，不给机器人任何反馈
	if req.IsSpambot() {
		log.Printf("检测到垃圾机器人! 蜜罐字段被填入 '%s'", req.HoneypotValue())
		return result.Ok(true)
	}

	if !req.AcceptTos {
		return result.Unprocessable[bool](constant.MsgMustAcceptTos)
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return result.FromError[bool](err)
	}
	if existing != nil {
		return result.Unprocessable[bool](constant.MsgUsernameTaken)
	}

	existing, err = s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return result.FromError[bool](err)
	}
	if existing != nil {
		return result.Unprocessable[bool](constant.MsgEmailTaken)
	}

	if err := security.ValidatePasswordStrength(req.Password); err != nil {
		return result.Unprocessable[bool](err.Error())
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return result.FromError[bool](err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return result.FromError[bool](err)
	}
	user.ID = userID

	// 第一位注册的用户自动成为管理员
	roleName := model.RoleUser
	if total, err := s.userRepo.CountAll(ctx); err == nil && total == 1 {
		roleName = model.RoleAdmin
	}
	if err := s.userRepo.ReplaceRoles(ctx, userID, []string{roleName}); err != nil {
		return result.FromError[bool](err)
	}
	user.Roles = []string{roleName}

	if err := s.sendWelcomeEmail(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.UserRegistered, user.ID)
	return result.Ok(true)
}

func (s *accountService) Login(ctx context.Context, req *dto.LoginRequest) result.Result[*dto.TokenResponse] {
	log.Printf("表单提交耗时 %.2f 秒", req.CompletionSeconds())

	if req.IsSpambot() {
		log.Printf("检测到垃圾机器人! 蜜罐字段被填入 '%s'", req.HoneypotValue())
		return result.Ok[*dto.TokenResponse](nil)
	}

	// 账户名可以是用户名或邮箱
	user, err := s.userRepo.FindByUsername(ctx, req.AccountName)
	if err != nil {
		return result.FromError[*dto.TokenResponse](err)
	}
	if user == nil {
		if user, err = s.userRepo.FindByEmail(ctx, req.AccountName); err != nil {
			return result.FromError[*dto.TokenResponse](err)
		}
	}
	if user == nil {
		return result.NotFound[*dto.TokenResponse](constant.MsgLoginFailedNotFound)
	}

	now := time.Now()
	if user.IsLockedOut(now) {
		return result.Unauthorized[*dto.TokenResponse](constant.LockoutMessage(user.LockoutUntil))
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.registerFailedAttempt(ctx, user, now)
		return result.Unauthorized[*dto.TokenResponse](constant.MsgLoginFailedInvalid)
	}

	// 密码正确但邮箱未确认：补发确认邮件后仍拒绝登录
	if !user.EmailConfirmed {
		if err := s.sendWelcomeEmail(ctx, user); err != nil {
			return result.FromError[*dto.TokenResponse](err)
		}
		return result.Unauthorized[*dto.TokenResponse](constant.MsgLoginFailedNotConfirmed)
	}

	user.AccessFailedCount = 0
	user.LockoutUntil = nil
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[*dto.TokenResponse](err)
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateSessionTokens(ctx, user)
	if err != nil {
		return result.FromError[*dto.TokenResponse](err)
	}

	s.eventBus.Publish(event.UserLoggedIn, user.ID)
	return result.Ok(&dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (s *accountService) Logout() error {
	return constant.ErrInvalidOperation
}

func (s *accountService) GetUserInfo(ctx context.Context, userID uint) result.Result[*dto.UserDTO] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return result.Unauthorized[*dto.UserDTO](constant.MsgNotLoggedIn)
	}

	userDTO, err := MapUserToDTO(user)
	if err != nil {
		return result.FromError[*dto.UserDTO](err)
	}
	return result.Ok(userDTO)
}

func (s *accountService) ConfirmAccount(ctx context.Context, req *dto.ConfirmAccountRequest) result.Result[bool] {
	userID, err := idgen.DecodeUserPublicID(req.UserID)
	if err != nil {
		return result.NotFound[bool](constant.MsgAccountErrorInvalidID)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return result.NotFound[bool](constant.MsgAccountErrorInvalidID)
	}

	if err := s.tokenSvc.ConsumeSignedToken(ctx, req.UserID, req.VerificationCode); err != nil {
		return result.Unauthorized[bool](constant.MsgInvalidToken)
	}

	user.EmailConfirmed = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.UserConfirmed, user.ID)
	return result.Ok(true)
}

func (s *accountService) InitiateEmailChange(ctx context.Context, userID uint, req *dto.InitiateEmailChangeRequest) result.Result[bool] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return result.FromError[bool](err)
	}

	// 变更邮箱前重新验证密码
	if !security.CheckPasswordHash(req.ConfirmPassword, user.PasswordHash) {
		return result.Unauthorized[bool](constant.MsgLoginFailedInvalid)
	}

	user.PendingEmail = req.Email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	if err := s.sendEmailChangeEmail(ctx, user); err != nil {
		return result.FromError[bool](err)
	}
	return result.Ok(true)
}

func (s *accountService) PerformEmailChange(ctx context.Context, userID uint, req *dto.PerformEmailChangeRequest) result.Result[bool] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return result.FromError[bool](err)
	}

	if user.PendingEmail != req.NewEmail {
		return result.Conflict[bool](constant.MsgEmailErrorWrongEmail)
	}

	requestUserID, err := idgen.DecodeUserPublicID(req.UserID)
	if err != nil || requestUserID != user.ID {
		return result.Conflict[bool](constant.MsgAccountErrorWrongID)
	}

	// 令牌与发起变更时登记的新邮箱绑定
	if err := s.tokenSvc.ConsumeSignedToken(ctx, req.UserID+":"+req.NewEmail, req.VerificationCode); err != nil {
		return result.Unprocessable[bool](constant.MsgInvalidToken)
	}

	user.Email = user.PendingEmail
	user.PendingEmail = ""
	user.EmailConfirmed = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.EmailChanged, user.ID)
	return result.Ok(true)
}

func (s *accountService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) result.Result[bool] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return result.FromError[bool](err)
	}

	if !security.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return result.Unauthorized[bool](constant.MsgLoginFailedInvalid)
	}
	if err := security.ValidatePasswordStrength(req.NewPassword); err != nil {
		return result.Unauthorized[bool](err.Error())
	}

	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return result.FromError[bool](err)
	}
	// 换新安全戳，其它设备上的旧会话随密码一起作废
	user.PasswordHash = hash
	user.SecurityStamp = uuid.New()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.PasswordChanged, user.ID)
	return result.Ok(true)
}

func (s *accountService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) result.Result[bool] {
	log.Printf("表单提交耗时 %.2f 秒", req.CompletionSeconds())

	if req.IsSpambot() {
		log.Printf("检测到垃圾机器人! 蜜罐字段被填入 '%s'", req.HoneypotValue())
		return result.Ok(true)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.AccountName)
	if err != nil {
		return result.FromError[bool](err)
	}
	if user == nil {
		if user, err = s.userRepo.FindByEmail(ctx, req.AccountName); err != nil {
			return result.FromError[bool](err)
		}
	}

	// 账户是否存在不告知调用方，存在时发邮件，不存在时也返回成功
	if user != nil {
		if err := s.sendPasswordResetEmail(ctx, user); err != nil {
			return result.FromError[bool](err)
		}
	}
	return result.Ok(true)
}

func (s *accountService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) result.Result[bool] {
	log.Printf("表单提交耗时 %.2f 秒", req.CompletionSeconds())

	if req.IsSpambot() {
		log.Printf("检测到垃圾机器人! 蜜罐字段被填入 '%s'", req.HoneypotValue())
		return result.Ok(true)
	}

	userID, err := idgen.DecodeUserPublicID(req.UserID)
	if err != nil {
		return result.NotFound[bool](constant.MsgAccountErrorInvalidID)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return result.NotFound[bool](constant.MsgAccountErrorInvalidID)
	}

	if err := s.tokenSvc.ConsumeSignedToken(ctx, req.UserID, req.VerificationCode); err != nil {
		return result.Unprocessable[bool](constant.MsgInvalidToken)
	}

	if err := security.ValidatePasswordStrength(req.NewPassword); err != nil {
		return result.Unprocessable[bool](err.Error())
	}
	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return result.FromError[bool](err)
	}

	// 重置密码同时解除登录失败锁定，换新安全戳作废旧会话
	user.PasswordHash = hash
	user.SecurityStamp = uuid.New()
	user.AccessFailedCount = 0
	user.LockoutUntil = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.PasswordChanged, user.ID)
	return result.Ok(true)
}

func (s *accountService) GetPersonalData(ctx context.Context, userID uint) result.Result[[]byte] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return result.FromError[[]byte](err)
	}

	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return result.FromError[[]byte](err)
	}

	// 只导出属于用户本人的个人数据
	personalData := map[string]string{
		"Id":             publicID,
		"UserName":       user.Username,
		"Email":          user.Email,
		"EmailConfirmed": strconv.FormatBool(user.EmailConfirmed),
	}
	if user.PendingEmail != "" {
		personalData["PendingEmail"] = user.PendingEmail
	}

	data, err := json.Marshal(personalData)
	if err != nil {
		return result.FromError[[]byte](err)
	}
	return result.Ok(data)
}

func (s *accountService) DeleteAccount(ctx context.Context, userID uint) result.Result[bool] {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.AccountDeleted, userID)
	return result.Ok(true)
}

// registerFailedAttempt 累计登录失败次数，达到阈值后锁定账户。
// 这里的写入失败只记日志，不影响给调用方的统一提示。
func (s *accountService) registerFailedAttempt(ctx context.Context, user *model.User, now time.Time) {
	user.AccessFailedCount++
	if user.AccessFailedCount >= maxFailedAccessAttempts {
		lockoutEnd := now.Add(lockoutDuration)
		user.LockoutUntil = &lockoutEnd
		user.AccessFailedCount = 0
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("记录登录失败次数失败 (用户 %d): %v", user.ID, err)
	}
}

func (s *accountService) sendWelcomeEmail(ctx context.Context, user *model.User) error {
	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return err
	}
	sign, err := s.tokenSvc.GenerateSignedToken(publicID, confirmTokenTTL)
	if err != nil {
		return err
	}
	return s.emailSvc.SendWelcomeEmail(ctx, user.Email, user.Username, publicID, sign)
}

func (s *accountService) sendEmailChangeEmail(ctx context.Context, user *model.User) error {
	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return err
	}
	sign, err := s.tokenSvc.GenerateSignedToken(publicID+":"+user.PendingEmail, emailChangeTokenTTL)
	if err != nil {
		return err
	}
	return s.emailSvc.SendEmailChangeEmail(ctx, user.PendingEmail, user.Username, publicID, sign)
}

func (s *accountService) sendPasswordResetEmail(ctx context.Context, user *model.User) error {
	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return err
	}
	sign, err := s.tokenSvc.GenerateSignedToken(publicID, resetTokenTTL)
	if err != nil {
		return err
	}
	return s.emailSvc.SendPasswordResetEmail(ctx, user.Email, user.Username, publicID, sign)
}
