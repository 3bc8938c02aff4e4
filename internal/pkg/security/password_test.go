package security

import "testing"

func TestHashPassword_哈希后可通过校验(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if hash == "Sup3r$ecret" {
		t.Fatal("哈希结果不应等于明文")
	}
	if !CheckPasswordHash("Sup3r$ecret", hash) {
		t.Error("正确密码未通过校验")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码不应通过校验")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"四类字符齐全", "Sup3r$ecret", false},
		{"缺少大写字母", "sup3r$ecret", true},
		{"缺少小写字母", "SUP3R$ECRET", true},
		{"缺少数字", "Super$ecret", true},
		{"缺少特殊字符", "Sup3rSecret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) 错误 = %v, wantErr=%v", tt.password, err, tt.wantErr)
			}
		})
	}
}
