/*
 * @Description: 跨服务共享的传输对象基础结构
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:40:19
 * @LastEditors: 安知鱼
 */
package dto

import "github.com/google/uuid"

// Entity 是带乐观并发控制实体的传输对象基础结构。
// 客户端读取时拿到当前并发戳，提交修改时原样带回。
type Entity[K comparable] struct {
	ID               K         `json:"id"`
	ConcurrencyStamp uuid.UUID `json:"concurrencyStamp"`
}

// PrimaryKey 返回传输对象携带的主键。
func (e *Entity[K]) PrimaryKey() K {
	return e.ID
}

// SetPrimaryKey 覆盖主键，路由参数优先于请求体。
func (e *Entity[K]) SetPrimaryKey(id K) {
	e.ID = id
}

// Stamp 返回客户端带回的并发戳。
func (e *Entity[K]) Stamp() uuid.UUID {
	return e.ConcurrencyStamp
}

// Honeypot 为公开表单提供反垃圾蜜罐能力。
// SecretKeyField 对应一个对真人不可见的表单字段，
// 正常用户永远不会填写它，机器人会。
type Honeypot struct {
	SecretKeyField string  `json:"secretKeyField"`
	TimeToComplete float64 `json:"timeToComplete"`
}

// IsSpambot 判断本次提交是否来自机器人。
func (h *Honeypot) IsSpambot() bool {
	return h.SecretKeyField != ""
}

// HoneypotValue 返回机器人填入隐藏字段的内容，用于记录日志。
func (h *Honeypot) HoneypotValue() string {
	return h.SecretKeyField
}

// CompletionSeconds 返回表单填写耗时（秒），用于分析统计。
func (h *Honeypot) CompletionSeconds() float64 {
	return h.TimeToComplete
}

// SpambotCheck 由携带蜜罐字段的传输对象实现。
type SpambotCheck interface {
	IsSpambot() bool
	HoneypotValue() string
	CompletionSeconds() float64
}

// PagedResult 是分页查询的统一返回结构。
// Items 永远不为 nil，空结果序列化为 []。
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}
