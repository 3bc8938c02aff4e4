/*
 * @Description: 业务逻辑相关的标准错误定义
 * @Author: 安知鱼
 * @Date: 2025-06-27 12:08:15
 * @LastEditTime: 2025-08-11 19:06:30
 * @LastEditors: 安知鱼
 */
package constant

import (
	"errors"
	"fmt"
)

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，由 result 层转换为 404
	ErrNotFound = errors.New("the requested resource was not found")

	// ErrConcurrency 表示数据库乐观并发冲突，由 result 层转换为 409。
	// 错误文本直接面向最终用户。
	ErrConcurrency = errors.New("The database entry has been updated since you last accessed it. Please reload the page and try again.")

	// ErrUnauthorized 表示未授权，由 result 层转换为 401
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden 表示无权访问，由 result 层转换为 403
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidToken 表示无效的令牌
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidOperation 表示有意不支持的操作，允许一路冒泡到顶层兜底
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidPublicID 表示无效的公共ID
	ErrInvalidPublicID = errors.New("invalid public ID")
)

// NotFoundError 表示按主键查找实体失败。
// Error() 的文本可以直接展示给最终用户。
type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Entity with ID %v was not found", e.Key)
}

// Is 使 errors.Is(err, ErrNotFound) 对 NotFoundError 成立。
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// KeyNotFound 构造一个携带具体主键信息的未找到错误。
func KeyNotFound(key any) error {
	return &NotFoundError{Key: key}
}

// ConflictError 表示应用层检测到的数据冲突（例如唯一性校验失败）。
// Message 是可以直接展示给用户的完整句子。
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict 构造一个数据冲突错误。
func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// DomainError 表示业务规则失败，消息可以安全展示给用户，
// 但不属于任何更具体的错误类别。
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Domain 构造一个业务规则错误。
func Domain(message string) error {
	return &DomainError{Message: message}
}
