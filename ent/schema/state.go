/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-30 20:55:31
 * @LastEditTime: 2025-08-31 00:46:28
 * @LastEditors: 安知鱼
 */
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// State holds the schema definition for the State entity.
type State struct {
	ent.Schema
}

// Annotations of the State.
func (State) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("州参考数据表"),
	}
}

// Fields of the State.
func (State) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			MaxLen(20).
			Unique().
			NotEmpty().
			Comment("州名称"),
		field.String("abbreviation").
			MaxLen(2).
			Unique().
			NotEmpty().
			Comment("两位缩写"),
		// 乐观并发控制戳，每次更新时重新生成
		field.UUID("concurrency_stamp", uuid.UUID{}).
			Default(uuid.New),
	}
}

// Edges of the State.
func (State) Edges() []ent.Edge {
	return nil
}
