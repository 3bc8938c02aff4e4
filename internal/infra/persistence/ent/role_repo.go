/*
 * @Description: 角色仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-08-30 21:05:44
 * @LastEditTime: 2025-08-31 01:10:02
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/role"
)

// entRoleRepository 是 RoleRepository 接口的 Ent 实现
type entRoleRepository struct {
	client *ent.Client
}

// NewEntRoleRepository 是 entRoleRepository 的构造函数
func NewEntRoleRepository(client *ent.Client) repository.RoleRepository {
	return &entRoleRepository{client: client}
}

func (r *entRoleRepository) FindAll(ctx context.Context) ([]*model.Role, error) {
	entRoles, err := r.client.Role.Query().
		Order(ent.Asc(role.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	domainRoles := make([]*model.Role, len(entRoles))
	for i, entRole := range entRoles {
		domainRoles[i] = toDomainRole(entRole)
	}
	return domainRoles, nil
}

// FindByName 按名称查找角色，不存在时返回 (nil, nil)
func (r *entRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	entRole, err := r.client.Role.Query().
		Where(role.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainRole(entRole), nil
}

// EnsureExists 确保指定名称的角色存在，用于启动时的种子数据。
func (r *entRoleRepository) EnsureExists(ctx context.Context, name string) (*model.Role, error) {
	existing, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := r.client.Role.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// 并发启动时可能已被其他实例创建
		if ent.IsConstraintError(err) {
			return r.FindByName(ctx, name)
		}
		return nil, err
	}
	return toDomainRole(created), nil
}

// --- 数据转换辅助函数 (Mapping Helper) ---

func toDomainRole(entRole *ent.Role) *model.Role {
	if entRole == nil {
		return nil
	}
	return &model.Role{
		ID:   entRole.ID,
		Name: entRole.Name,
	}
}
