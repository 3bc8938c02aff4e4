/*
 * @Description: 实体与传输对象之间的映射契约
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 22:20:15
 * @LastEditors: 安知鱼
 */
package crud

import (
	"context"

	"github.com/google/uuid"
)

// Adapter 负责实体与传输对象之间的双向映射。
// 主键和并发戳不属于映射范围，由调用方（CRUD 服务）处理。
type Adapter[E any, D any] interface {
	// MapAddDTO 根据传输对象构造一个待创建的新实体。
	MapAddDTO(ctx context.Context, d D) (*E, error)

	// MapEditDTO 将传输对象中允许修改的字段写入已有实体。
	MapEditDTO(ctx context.Context, d D, entity *E) error

	// MapToDTO 将实体映射为对外的传输对象。
	MapToDTO(ctx context.Context, entity *E) (D, error)
}

// EntityDTO 约束了通用 CRUD 服务可以处理的传输对象：
// 必须能报告主键与客户端带回的并发戳。
type EntityDTO[K comparable] interface {
	PrimaryKey() K
	Stamp() uuid.UUID
}

// stampSetter 由携带并发戳的实体实现。
type stampSetter interface {
	SetStamp(stamp uuid.UUID)
}
