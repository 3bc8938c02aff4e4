/*
 * @Description: 面向最终用户的提示文案（英文，随响应体返回）
 * @Author: 安知鱼
 * @Date: 2025-06-27 12:08:15
 * @LastEditTime: 2025-08-11 19:06:30
 * @LastEditors: 安知鱼
 */
package constant

import (
	"fmt"
	"time"
)

// 通用文案
const (
	MsgDatabase  = "There was a database error."
	MsgContactIt = "Please contact the IT team if your problem persists."

	MsgUnknown             = "An unknown error has occurred."
	MsgNotFound            = "The requested resource was not found."
	MsgNotLoggedIn         = "You must be logged in to perform that action."
	MsgNoPermission        = "You do not have permission to perform that action."
	MsgUnprocessable       = "Your request could not be processed with the provided data. Please check your data and try again."
	MsgDataConflict        = "The data you entered is not valid. Please check your data and try again."
	MsgConcurrencyConflict = "The database record you requested has been updated since you last accessed it. Please reload the page and try again."
)

// 账户相关文案
const (
	MsgMustAcceptTos           = "You must accept the Terms of Service to create an account."
	MsgUsernameTaken           = "That username is already taken."
	MsgEmailTaken              = "That email address is already taken. Do you need to reset your password instead?"
	MsgLoginFailedNotFound     = "No account with those credentials was found."
	MsgLoginFailedInvalid      = "Invalid credentials supplied."
	MsgLoginFailedNotConfirmed = "You have not confirmed your email address. Please check your email for a confirmation link and click it to confirm your email address."
	MsgEmailErrorWrongEmail    = "That email does not match the email change request you initiated."
	MsgAccountErrorWrongID     = "The User ID supplied does not match your account."
	MsgAccountErrorInvalidID   = "No account was found with that User ID."
	MsgInvalidToken            = "Invalid token."
)

// 州（States）参考数据相关文案
const (
	MsgStateDuplicateName         = "A State with that name already exists."
	MsgStateDuplicateAbbreviation = "A State with that abbreviation already exists."
)

// LockoutMessage 返回账户锁定状态的提示文案。
// lockoutEnd 为 nil 表示永久锁定。
func LockoutMessage(lockoutEnd *time.Time) string {
	if lockoutEnd == nil {
		return "Your account is permanently locked."
	}
	return fmt.Sprintf(
		"Your account is currently locked. The lock will end on %s at %s.",
		lockoutEnd.Format("Monday, January 2, 2006"),
		lockoutEnd.Format("3:04:05 PM"),
	)
}
