/*
 * @Description: 用户领域模型
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:30:45
 * @LastEditors: 安知鱼
 */
package model

import (
	"time"

	"github.com/google/uuid"
)

// User 是数据库无关的用户领域模型。
// 用户由身份提供方管理，不走通用 CRUD 服务，
// 并发控制由存储层的行级更新保证，因此不携带并发戳。
type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string
	Email        string
	PasswordHash string

	// SecurityStamp 在角色或密码变更时更换，
	// 携带旧戳的会话令牌在校验时被拒绝。
	SecurityStamp uuid.UUID

	// EmailConfirmed 标记用户是否已点击确认邮件中的链接
	EmailConfirmed bool
	// PendingEmail 保存两步邮箱变更流程中等待确认的新邮箱
	PendingEmail string

	// 登录失败锁定
	AccessFailedCount int
	LockoutUntil      *time.Time

	LastLoginAt *time.Time

	// Roles 是用户所属角色的名称列表，查询时随用户一并加载
	Roles []string
}

// IsLockedOut 判断用户当前是否处于锁定状态。
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutUntil != nil && u.LockoutUntil.After(now)
}

// HasRole 判断用户是否拥有指定角色。
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role 表示一个可以授予用户的角色。
type Role struct {
	ID   uint
	Name string
}

// 预置角色名称
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
