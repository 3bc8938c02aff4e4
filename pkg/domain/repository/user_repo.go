/*
 * @Description: 用户数据操作的契约
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:58:12
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
)

// UserRepository 定义了用户数据操作的契约。
// 除基础 CRUD 外还包含按用户名/邮箱查找、角色维护与
// 清理任务所需的批量删除。
type UserRepository interface {
	Repository[model.User, uint]

	// FindByUsername 按用户名查找，不存在时返回 (nil, nil)。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByEmail 按邮箱查找，不存在时返回 (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// CountAll 返回用户总数，不应用任何过滤条件。
	CountAll(ctx context.Context) (int, error)

	// ReplaceRoles 整体替换用户的角色集合。
	ReplaceRoles(ctx context.Context, userID uint, roleNames []string) error

	// DeleteUnconfirmedBefore 删除在指定时间之前注册且始终未确认
	// 邮箱的账户，返回删除数量。
	DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// RoleRepository 定义了角色数据操作的契约。
type RoleRepository interface {
	// FindAll 返回全部角色。
	FindAll(ctx context.Context) ([]*model.Role, error)

	// FindByName 按名称查找角色，不存在时返回 (nil, nil)。
	FindByName(ctx context.Context, name string) (*model.Role, error)

	// EnsureExists 确保指定名称的角色存在，返回该角色。
	EnsureExists(ctx context.Context, name string) (*model.Role, error)
}
