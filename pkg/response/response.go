/*
 * @Description: 统一的API返回结构与服务结果到HTTP的映射
 * @Author: 安知鱼
 * @Date: 2025-06-15 12:16:18
 * @LastEditTime: 2025-08-31 01:22:40
 * @LastEditors: 安知鱼
 */
package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 202 Accepted 或 204 No Content 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	if code == http.StatusNoContent {
		c.Status(code)
		return
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Status 返回服务错误类别对应的 HTTP 状态码。
func Status(err result.ServiceError) int {
	switch err {
	case result.ErrorNone:
		return http.StatusOK
	case result.ErrorNotFound:
		return http.StatusNotFound
	case result.ErrorUnauthorized:
		return http.StatusUnauthorized
	case result.ErrorForbidden:
		return http.StatusForbidden
	case result.ErrorUnprocessable:
		return http.StatusUnprocessableEntity
	case result.ErrorDataConflict, result.ErrorDatabaseConcurrency:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// defaultMessage 是各失败类别在结果未携带消息时的兜底文案。
func defaultMessage(err result.ServiceError) string {
	switch err {
	case result.ErrorNotFound:
		return constant.MsgNotFound
	case result.ErrorUnauthorized:
		return constant.MsgNotLoggedIn
	case result.ErrorForbidden:
		return constant.MsgNoPermission
	case result.ErrorUnprocessable:
		return constant.MsgUnprocessable
	case result.ErrorDataConflict:
		return constant.MsgDataConflict
	case result.ErrorDatabaseConcurrency:
		return constant.MsgConcurrencyConflict
	default:
		return fmt.Sprintf("%s %s", constant.MsgUnknown, constant.MsgContactIt)
	}
}

// FromResult 把服务结果写成 HTTP 响应，
// 成功时使用 successStatus 与负载，失败时按类别映射状态码。
func FromResult[T any](c *gin.Context, res result.Result[T], successStatus int) {
	if res.WasSuccessful() {
		SuccessWithStatus(c, successStatus, res.Value, "ok")
		return
	}

	message := res.Message
	if message == "" {
		message = defaultMessage(res.Err)
	}
	Fail(c, Status(res.Err), message)
}

// FromResultNoContent 是无负载操作的快捷方式，成功时返回 204。
func FromResultNoContent[T any](c *gin.Context, res result.Result[T]) {
	FromResult(c, res, http.StatusNoContent)
}
