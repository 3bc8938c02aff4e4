package configdef

import (
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
)

// Definition 定义了单个配置项的所有属性。
type Definition struct {
	Key      constant.SettingKey
	Value    string
	Comment  string
	IsPublic bool
}

// AllSettings 是系统中所有配置项的"单一事实来源"，
// 引导程序按此列表把缺失的配置项补进数据库。
var AllSettings = []Definition{
	// --- 站点基础配置 ---
	{Key: constant.KeyAppName, Value: "Qingyu Admin", Comment: "应用名称", IsPublic: true},
	{Key: constant.KeySiteURL, Value: "http://localhost:8091", Comment: "应用URL，用于拼接邮件里的确认链接", IsPublic: true},

	// --- 安全配置 ---
	// JWT_SECRET 的默认值由引导程序随机生成，这里留空。
	{Key: constant.KeyJWTSecret, Value: "", Comment: "JWT 签名密钥", IsPublic: false},

	// --- 邮件配置 ---
	{Key: constant.KeySMTPHost, Value: "", Comment: "SMTP 服务器地址，留空时邮件仅打印到日志", IsPublic: false},
	{Key: constant.KeySMTPPort, Value: "465", Comment: "SMTP 服务器端口", IsPublic: false},
	{Key: constant.KeySMTPUser, Value: "", Comment: "SMTP 用户名", IsPublic: false},
	{Key: constant.KeySMTPPass, Value: "", Comment: "SMTP 密码", IsPublic: false},
	{Key: constant.KeySMTPFromEmail, Value: "", Comment: "发件人邮箱", IsPublic: false},
	{Key: constant.KeySMTPFromName, Value: "Qingyu Admin", Comment: "发件人名称", IsPublic: true},
}
