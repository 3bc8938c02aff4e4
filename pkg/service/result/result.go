/*
 * @Description: 服务层统一的结果类型与错误翻译策略
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 22:10:37
 * @LastEditors: 安知鱼
 */
package result

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
)

// ServiceError 对服务调用的失败方式进行分类，
// HTTP 层据此决定响应状态码。
type ServiceError int

const (
	ErrorNone ServiceError = iota
	ErrorUnknown
	ErrorNotFound
	ErrorUnauthorized
	ErrorForbidden
	ErrorUnprocessable
	ErrorDataConflict
	ErrorDatabaseConcurrency
)

// String 返回错误类别的可读名称，仅用于日志。
func (e ServiceError) String() string {
	switch e {
	case ErrorNone:
		return "None"
	case ErrorNotFound:
		return "NotFound"
	case ErrorUnauthorized:
		return "Unauthorized"
	case ErrorForbidden:
		return "Forbidden"
	case ErrorUnprocessable:
		return "Unprocessable"
	case ErrorDataConflict:
		return "DataConflict"
	case ErrorDatabaseConcurrency:
		return "DatabaseConcurrency"
	default:
		return "Unknown"
	}
}

// Result 是所有服务方法的统一返回值。
// 成功时 Err 为 ErrorNone 且 Value 携带负载，
// 失败时 Message 是可以直接展示给用户的完整句子。
type Result[T any] struct {
	Value   T
	Err     ServiceError
	Message string
}

// WasSuccessful 判断服务调用是否成功。
func (r Result[T]) WasSuccessful() bool {
	return r.Err == ErrorNone
}

// Ok 构造一个携带负载的成功结果。
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Failure 构造一个指定类别与消息的失败结果。
func Failure[T any](err ServiceError, message string) Result[T] {
	return Result[T]{Err: err, Message: message}
}

// NotFound 构造一个资源未找到的失败结果。
func NotFound[T any](message string) Result[T] {
	return Failure[T](ErrorNotFound, message)
}

// Unauthorized 构造一个未认证的失败结果。
func Unauthorized[T any](message string) Result[T] {
	return Failure[T](ErrorUnauthorized, message)
}

// Forbidden 构造一个无权限的失败结果。
func Forbidden[T any](message string) Result[T] {
	return Failure[T](ErrorForbidden, message)
}

// Unprocessable 构造一个数据无法处理的失败结果。
func Unprocessable[T any](message string) Result[T] {
	return Failure[T](ErrorUnprocessable, message)
}

// Conflict 构造一个数据冲突的失败结果。
func Conflict[T any](message string) Result[T] {
	return Failure[T](ErrorDataConflict, message)
}

// ConcurrencyConflict 构造一个数据库并发冲突的失败结果。
func ConcurrencyConflict[T any](message string) Result[T] {
	return Failure[T](ErrorDatabaseConcurrency, message)
}

// FromError 是仓储/基础设施错误到服务结果的唯一翻译入口：
//   - 并发冲突、未找到、数据冲突与业务规则错误原样透传各自的消息；
//   - 其余错误一律归为 Unknown，错误链中带 "sql" 字样的按数据库
//     错误提示，否则按未知错误提示，并统一附上联系支持的后缀。
func FromError[T any](err error) Result[T] {
	var conflictErr *constant.ConflictError
	var domainErr *constant.DomainError

	switch {
	case errors.Is(err, constant.ErrConcurrency):
		return ConcurrencyConflict[T](err.Error())
	case errors.Is(err, constant.ErrNotFound):
		return NotFound[T](err.Error())
	case errors.As(err, &conflictErr):
		return Conflict[T](conflictErr.Message)
	case errors.As(err, &domainErr):
		return Failure[T](ErrorUnknown, domainErr.Message)
	default:
		if strings.Contains(strings.ToLower(err.Error()), "sql") {
			return Failure[T](ErrorUnknown, fmt.Sprintf("%s %s", constant.MsgDatabase, constant.MsgContactIt))
		}
		return Failure[T](ErrorUnknown, fmt.Sprintf("%s %s", constant.MsgUnknown, constant.MsgContactIt))
	}
}
