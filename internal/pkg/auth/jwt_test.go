package auth

import (
	"testing"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestGenerateToken_往返解析(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(42, []string{"Admin", "User"}, "stamp-1", secret)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}

	userID, err := idgen.DecodeUserPublicID(claims.UserID)
	if err != nil {
		t.Fatalf("解码公共ID失败: %v", err)
	}
	if userID != 42 {
		t.Errorf("用户ID = %d, 期望 42", userID)
	}
	if !claims.IsAdmin() {
		t.Error("携带 Admin 角色的令牌应判定为管理员")
	}
	if claims.SecurityStamp != "stamp-1" {
		t.Errorf("安全戳 = %q, 期望 stamp-1", claims.SecurityStamp)
	}
}

func TestGenerateRefreshToken_有效期七天(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateRefreshToken(42, "stamp-1", secret)
	if err != nil {
		t.Fatalf("生成刷新令牌失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析刷新令牌失败: %v", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 7*24*time.Hour || ttl < 7*24*time.Hour-time.Minute {
		t.Errorf("刷新令牌剩余有效期 = %v, 期望约 7 天", ttl)
	}
}

func TestParseToken_错误密钥解析失败(t *testing.T) {
	token, err := GenerateToken(1, []string{"User"}, "stamp-1", []byte("right-secret"))
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := ParseToken(token, []byte("wrong-secret")); err == nil {
		t.Error("使用错误密钥解析应失败")
	}
}

func TestGenerateToken_空密钥报错(t *testing.T) {
	if _, err := GenerateToken(1, nil, "", nil); err == nil {
		t.Error("空密钥应返回错误")
	}
}

func TestCustomClaims_IsAdmin(t *testing.T) {
	plain := &CustomClaims{Roles: []string{"User"}}
	if plain.IsAdmin() {
		t.Error("普通用户不应判定为管理员")
	}
}
