/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-30 20:55:31
 * @LastEditTime: 2025-08-31 00:44:10
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("email").
			MaxLen(100).
			Unique().
			NotEmpty().
			Comment("用户邮箱"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		// 安全戳，角色或密码变更时更换，携带旧戳的会话令牌随之失效
		field.UUID("security_stamp", uuid.UUID{}).
			Default(uuid.New),
		field.Bool("email_confirmed").
			Default(false).
			Comment("是否已通过邮件确认"),
		field.String("pending_email").
			MaxLen(100).
			Optional().
			Comment("两步邮箱变更中待确认的新邮箱"),
		field.Int("access_failed_count").
			Default(0).
			Comment("连续登录失败次数"),
		field.Time("lockout_until").
			Optional().
			Nillable().
			Comment("锁定截止时间"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// 一个用户可以拥有多个角色
		edge.To("roles", Role.Type),
	}
}
