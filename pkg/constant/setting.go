// internal/constant/setting.go
/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-21 17:18:09
 * @LastEditTime: 2025-11-23 12:50:55
 * @LastEditors: 安知鱼
 */
package constant

// SettingKey 为所有在应用中使用的配置键定义了类型安全的常量。
type SettingKey string

// String 方便地将 SettingKey 转换为 string 类型。
func (k SettingKey) String() string {
	return string(k)
}

const (
	// --- 站点基础配置 ---
	KeyAppName SettingKey = "APP_NAME"
	KeySiteURL SettingKey = "SITE_URL"

	// --- 安全配置 ---
	KeyJWTSecret SettingKey = "JWT_SECRET"

	// --- 邮件配置 ---
	KeySMTPHost      SettingKey = "SMTP_HOST"
	KeySMTPPort      SettingKey = "SMTP_PORT"
	KeySMTPUser      SettingKey = "SMTP_USER"
	KeySMTPPass      SettingKey = "SMTP_PASS"
	KeySMTPFromEmail SettingKey = "SMTP_FROM_EMAIL"
	KeySMTPFromName  SettingKey = "SMTP_FROM_NAME"
)
