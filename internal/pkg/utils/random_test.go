package utils

import "testing"

func TestGenerateRandomString_长度与唯一性(t *testing.T) {
	for _, length := range []int{1, 16, 32, 64} {
		s, err := GenerateRandomString(length)
		if err != nil {
			t.Fatalf("生成长度 %d 失败: %v", length, err)
		}
		if len(s) != length {
			t.Errorf("len = %d, 期望 %d", len(s), length)
		}
	}

	a, _ := GenerateRandomString(32)
	b, _ := GenerateRandomString(32)
	if a == b {
		t.Error("两次生成的随机字符串不应相同")
	}
}

func TestGenerateRandomString_非法长度报错(t *testing.T) {
	if _, err := GenerateRandomString(0); err == nil {
		t.Error("长度为 0 应返回错误")
	}
}
