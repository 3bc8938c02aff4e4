/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-11 18:38:27
 * @LastEditTime: 2025-08-30 22:58:41
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索整个用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// UserID 存储的是用户的公共 ID 字符串表示。
type CustomClaims struct {
	UserID string   `json:"user_id"` // 用户公共ID
	Roles  []string `json:"roles"`   // 用户的角色列表
	// SecurityStamp 是签发时用户安全戳的快照，
	// 与数据库中的当前值不一致时令牌失效。
	SecurityStamp string `json:"stamp,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin 判断令牌持有者是否拥有管理员角色。
func (c *CustomClaims) IsAdmin() bool {
	for _, r := range c.Roles {
		if r == "Admin" {
			return true
		}
	}
	return false
}
