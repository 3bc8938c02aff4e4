/*
 * @Description: 领域实体的泛型基础结构
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:14:02
 * @LastEditors: 安知鱼
 */
package model

import "github.com/google/uuid"

// Entity 是所有带乐观并发控制的领域实体的基础结构。
// ConcurrencyStamp 在每次成功写入后都会更换为新的随机值，
// 仓储层在更新前据此判断数据是否已被其他人修改。
type Entity[K comparable] struct {
	ID               K
	ConcurrencyStamp uuid.UUID
}

// PrimaryKey 返回实体的主键。
func (e *Entity[K]) PrimaryKey() K {
	return e.ID
}

// Stamp 返回当前的并发戳。
func (e *Entity[K]) Stamp() uuid.UUID {
	return e.ConcurrencyStamp
}

// SetStamp 覆盖当前的并发戳。
func (e *Entity[K]) SetStamp(stamp uuid.UUID) {
	e.ConcurrencyStamp = stamp
}
