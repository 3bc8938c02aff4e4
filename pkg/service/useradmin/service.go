/*
 * @Description: 管理员视角的用户管理服务
 * @Author: 安知鱼
 * @Date: 2025-06-29 15:40:21
 * @LastEditTime: 2025-08-31 00:31:52
 * @LastEditors: 安知鱼
 */
package useradmin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/security"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/account"
	authsvc "github.com/anzhiyu-c/qingyu-admin/pkg/service/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/utility"
)

// 管理员发起的邮箱变更与账户自助流程共用同一个确认端点，
// 令牌的标识符格式必须保持一致。
const emailChangeTokenTTL = 24 * time.Hour

// Service 定义了管理员用户管理操作的接口，
// 所有对外的用户标识都是公共 ID。
type Service interface {
	GetAllUsers(ctx context.Context, filter *repository.Filter) result.Result[*dto.PagedResult[*dto.UserDTO]]
	GetUserData(ctx context.Context, publicID string) result.Result[*dto.UserDTO]
	UpdateUserEmail(ctx context.Context, req *dto.UserChangeEmailDTO) result.Result[bool]
	UpdateUserPassword(ctx context.Context, req *dto.UserChangePasswordDTO) result.Result[bool]
	GetAvailableRoles(ctx context.Context) result.Result[[]string]
	UpdateUserRoles(ctx context.Context, req *dto.UserUpdateRolesDTO) result.Result[bool]
}

type userAdminService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokenSvc authsvc.TokenService
	emailSvc utility.EmailService
	eventBus *event.EventBus
}

// NewService 是 userAdminService 的构造函数
func NewService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenSvc authsvc.TokenService,
	emailSvc utility.EmailService,
	eventBus *event.EventBus,
) Service {
	return &userAdminService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokenSvc: tokenSvc,
		emailSvc: emailSvc,
		eventBus: eventBus,
	}
}

func (s *userAdminService) GetAllUsers(ctx context.Context, filter *repository.Filter) result.Result[*dto.PagedResult[*dto.UserDTO]] {
	users, err := s.userRepo.GetPagified(ctx, filter)
	if err != nil {
		return result.FromError[*dto.PagedResult[*dto.UserDTO]](err)
	}

	items := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTO, err := account.MapUserToDTO(user)
		if err != nil {
			return result.FromError[*dto.PagedResult[*dto.UserDTO]](err)
		}
		items = append(items, userDTO)
	}

	total, err := s.userRepo.GetCount(ctx, filter)
	if err != nil {
		return result.FromError[*dto.PagedResult[*dto.UserDTO]](err)
	}

	return result.Ok(&dto.PagedResult[*dto.UserDTO]{
		Items:      items,
		TotalCount: total,
	})
}

func (s *userAdminService) GetUserData(ctx context.Context, publicID string) result.Result[*dto.UserDTO] {
	user, res := findUser[*dto.UserDTO](ctx, s.userRepo, publicID)
	if res != nil {
		return *res
	}

	userDTO, err := account.MapUserToDTO(user)
	if err != nil {
		return result.FromError[*dto.UserDTO](err)
	}
	return result.Ok(userDTO)
}

func (s *userAdminService) UpdateUserEmail(ctx context.Context, req *dto.UserChangeEmailDTO) result.Result[bool] {
	user, res := findUser[bool](ctx, s.userRepo, req.UserID)
	if res != nil {
		return *res
	}

	user.PendingEmail = req.Email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	// 新邮箱由用户本人通过邮件里的链接确认
	sign, err := s.tokenSvc.GenerateSignedToken(req.UserID+":"+req.Email, emailChangeTokenTTL)
	if err != nil {
		return result.FromError[bool](err)
	}
	if err := s.emailSvc.SendEmailChangeEmail(ctx, req.Email, user.Username, req.UserID, sign); err != nil {
		return result.FromError[bool](err)
	}
	return result.Ok(true)
}

func (s *userAdminService) UpdateUserPassword(ctx context.Context, req *dto.UserChangePasswordDTO) result.Result[bool] {
	user, res := findUser[bool](ctx, s.userRepo, req.UserID)
	if res != nil {
		return *res
	}

	if err := security.ValidatePasswordStrength(req.NewPassword); err != nil {
		return result.Unprocessable[bool](err.Error())
	}
	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return result.FromError[bool](err)
	}

	// 换新安全戳，旧会话令牌随密码一起作废
	user.PasswordHash = hash
	user.SecurityStamp = uuid.New()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.PasswordChanged, user.ID)
	return result.Ok(true)
}

func (s *userAdminService) GetAvailableRoles(ctx context.Context) result.Result[[]string] {
	roles, err := s.roleRepo.FindAll(ctx)
	if err != nil {
		return result.FromError[[]string](err)
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return result.Ok(names)
}

func (s *userAdminService) UpdateUserRoles(ctx context.Context, req *dto.UserUpdateRolesDTO) result.Result[bool] {
	user, res := findUser[bool](ctx, s.userRepo, req.UserID)
	if res != nil {
		return *res
	}

	if err := s.userRepo.ReplaceRoles(ctx, user.ID, req.Roles); err != nil {
		return result.Unprocessable[bool]("Failed to add user to roles")
	}

	// 换新安全戳，携带旧角色集合的会话令牌立即失效
	user.SecurityStamp = uuid.New()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return result.FromError[bool](err)
	}

	s.eventBus.Publish(event.UserRolesChanged, user.ID)
	return result.Ok(true)
}

// findUser 解码公共 ID 并加载用户，失败时返回可直接透传的结果。
func findUser[T any](ctx context.Context, userRepo repository.UserRepository, publicID string) (*model.User, *result.Result[T]) {
	userID, err := idgen.DecodeUserPublicID(publicID)
	if err != nil {
		res := result.NotFound[T](constant.MsgAccountErrorInvalidID)
		return nil, &res
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		res := result.NotFound[T](constant.MsgAccountErrorInvalidID)
		return nil, &res
	}
	return user, nil
}
