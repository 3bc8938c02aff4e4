/*
 * @Description: 用户仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-08-30 21:05:44
 * @LastEditTime: 2025-08-31 01:06:37
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/predicate"
	"github.com/anzhiyu-c/qingyu-admin/ent/role"
	"github.com/anzhiyu-c/qingyu-admin/ent/user"
)

// userSortFields 是允许的排序列，未识别的列回落到创建时间排序。
var userSortFields = map[string]string{
	"username":  user.FieldUsername,
	"email":     user.FieldEmail,
	"createdAt": user.FieldCreatedAt,
}

// entUserRepository 是 UserRepository 的 Ent 实现
type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

func (r *entUserRepository) Find(ctx context.Context, opts repository.FindOptions) ([]*model.User, error) {
	query := r.client.User.Query().
		WithRoles().
		Order(ent.Asc(user.FieldID))
	if opts.Skip > 0 {
		query = query.Offset(opts.Skip)
	}
	if opts.Take > 0 {
		query = query.Limit(opts.Take)
	}

	entUsers, err := query.All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainUsers(entUsers), nil
}

func (r *entUserRepository) GetPagified(ctx context.Context, filter *repository.Filter) ([]*model.User, error) {
	filter.Normalize()

	query := r.client.User.Query().
		Where(searchUsers(filter.SearchTerm)...).
		WithRoles()

	sortField := user.FieldCreatedAt
	if f, ok := userSortFields[filter.SortName]; ok {
		sortField = f
	}
	if filter.SortDescending {
		query = query.Order(ent.Desc(sortField))
	} else {
		query = query.Order(ent.Asc(sortField))
	}

	entUsers, err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainUsers(entUsers), nil
}

func (r *entUserRepository) GetCount(ctx context.Context, filter *repository.Filter) (int, error) {
	query := r.client.User.Query()
	if filter != nil {
		query = query.Where(searchUsers(filter.SearchTerm)...)
	}
	return query.Count(ctx)
}

// FindByID 根据 ID 查找用户，并预加载角色信息
func (r *entUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entUser, err := r.client.User.Query().
		Where(user.ID(id)).
		WithRoles().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.KeyNotFound(id)
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByUsername 按用户名查找用户，不存在时返回 (nil, nil)
func (r *entUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entUser, err := r.client.User.Query().
		Where(user.Username(username)).
		WithRoles().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByEmail 按邮箱查找用户，不存在时返回 (nil, nil)
func (r *entUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entUser, err := r.client.User.Query().
		Where(user.Email(email)).
		WithRoles().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

func (r *entUserRepository) Create(ctx context.Context, entity *model.User) (uint, error) {
	createBuilder := r.client.User.Create().
		SetUsername(entity.Username).
		SetEmail(entity.Email).
		SetPasswordHash(entity.PasswordHash).
		SetEmailConfirmed(entity.EmailConfirmed).
		SetPendingEmail(entity.PendingEmail).
		SetAccessFailedCount(entity.AccessFailedCount)

	if entity.LastLoginAt != nil {
		createBuilder.SetLastLoginAt(*entity.LastLoginAt)
	}

	created, err := createBuilder.Save(ctx)
	if err != nil {
		return 0, err
	}

	// 同步数据库生成的值
	entity.ID = created.ID
	entity.CreatedAt = created.CreatedAt
	entity.UpdatedAt = created.UpdatedAt
	entity.SecurityStamp = created.SecurityStamp
	return created.ID, nil
}

func (r *entUserRepository) Update(ctx context.Context, entity *model.User) error {
	updateBuilder := r.client.User.UpdateOneID(entity.ID).
		SetUsername(entity.Username).
		SetEmail(entity.Email).
		SetPasswordHash(entity.PasswordHash).
		SetSecurityStamp(entity.SecurityStamp).
		SetEmailConfirmed(entity.EmailConfirmed).
		SetPendingEmail(entity.PendingEmail).
		SetAccessFailedCount(entity.AccessFailedCount)

	if entity.LockoutUntil != nil {
		updateBuilder.SetLockoutUntil(*entity.LockoutUntil)
	} else {
		updateBuilder.ClearLockoutUntil()
	}
	if entity.LastLoginAt != nil {
		updateBuilder.SetLastLoginAt(*entity.LastLoginAt)
	}

	updated, err := updateBuilder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.KeyNotFound(entity.ID)
		}
		return err
	}

	entity.UpdatedAt = updated.UpdatedAt
	return nil
}

// Delete 按主键删除，主键不存在时静默成功。
func (r *entUserRepository) Delete(ctx context.Context, id uint) error {
	_, err := r.client.User.Delete().
		Where(user.ID(id)).
		Exec(ctx)
	return err
}

func (r *entUserRepository) CountAll(ctx context.Context) (int, error) {
	return r.client.User.Query().Count(ctx)
}

// ReplaceRoles 整体替换用户的角色集合。
// 未知的角色名会被静默忽略，角色本身由启动时的种子数据维护。
func (r *entUserRepository) ReplaceRoles(ctx context.Context, userID uint, roleNames []string) error {
	roles, err := r.client.Role.Query().
		Where(role.NameIn(roleNames...)).
		All(ctx)
	if err != nil {
		return err
	}

	roleIDs := make([]uint, len(roles))
	for i, entRole := range roles {
		roleIDs[i] = entRole.ID
	}

	_, err = r.client.User.UpdateOneID(userID).
		ClearRoles().
		AddRoleIDs(roleIDs...).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.KeyNotFound(userID)
		}
		return err
	}
	return nil
}

// DeleteUnconfirmedBefore 清理在截止时间前注册且始终未确认邮箱的账户。
func (r *entUserRepository) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return r.client.User.Delete().
		Where(
			user.EmailConfirmed(false),
			user.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}

// searchUsers 把搜索词展开成用户名/邮箱的模糊匹配条件
func searchUsers(searchTerm string) []predicate.User {
	if searchTerm == "" {
		return nil
	}
	return []predicate.User{
		user.Or(
			user.UsernameContainsFold(searchTerm),
			user.EmailContainsFold(searchTerm),
		),
	}
}

// --- 数据转换辅助函数 (Mapping Helper) ---

// toDomainUser 将 *ent.User (持久化对象) 转换为 *model.User (领域模型)
func toDomainUser(u *ent.User) *model.User {
	if u == nil {
		return nil
	}

	roles := make([]string, 0, len(u.Edges.Roles))
	for _, entRole := range u.Edges.Roles {
		roles = append(roles, entRole.Name)
	}

	return &model.User{
		ID:                u.ID,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		SecurityStamp:     u.SecurityStamp,
		EmailConfirmed:    u.EmailConfirmed,
		PendingEmail:      u.PendingEmail,
		AccessFailedCount: u.AccessFailedCount,
		LockoutUntil:      u.LockoutUntil,
		LastLoginAt:       u.LastLoginAt,
		Roles:             roles,
	}
}

func toDomainUsers(entUsers []*ent.User) []*model.User {
	domainUsers := make([]*model.User, len(entUsers))
	for i, u := range entUsers {
		domainUsers[i] = toDomainUser(u)
	}
	return domainUsers
}
