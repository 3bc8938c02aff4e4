/*
 * @Description: 随机字符串工具
 * @Author: 安知鱼
 * @Date: 2025-06-15 12:25:50
 * @LastEditTime: 2025-08-31 10:12:08
 * @LastEditors: 安知鱼
 */
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRandomString 生成指定长度的 URL 安全随机字符串，
// 用于首次启动时的签名密钥等场景。
func GenerateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("随机字符串长度必须为正数: %d", length)
	}

	// 多取一个字节，保证编码后的长度不小于要求的长度
	raw := make([]byte, base64.RawURLEncoding.DecodedLen(length)+1)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("读取随机源失败: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)[:length], nil
}
