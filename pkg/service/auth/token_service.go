/*
 * @Description: 会话令牌与一次性签名令牌服务
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2025-08-30 23:46:19
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/setting"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/utility"
)

// TokenService 管理两类令牌：JWT 会话令牌（访问/刷新），
// 以及邮件链接里使用的 HMAC 一次性签名令牌。
type TokenService interface {
	GenerateSessionTokens(ctx context.Context, user *model.User) (accessToken, refreshToken string, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)

	GenerateSignedToken(identifier string, duration time.Duration) (string, error)
	VerifySignedToken(identifier, sign string) error
	// ConsumeSignedToken 验证并作废一个一次性签名令牌，
	// 同一令牌第二次消费会失败。
	ConsumeSignedToken(ctx context.Context, identifier, sign string) error
}

type tokenService struct {
	userRepo   repository.UserRepository
	settingSvc setting.SettingService
	cacheSvc   utility.CacheService
}

// NewTokenService 构造函数
func NewTokenService(
	userRepo repository.UserRepository,
	settingSvc setting.SettingService,
	cacheSvc utility.CacheService,
) TokenService {
	return &tokenService{
		userRepo:   userRepo,
		settingSvc: settingSvc,
		cacheSvc:   cacheSvc,
	}
}

// --- JWT 会话令牌实现 ---

func (s *tokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret.String())
	if jwtSecret == "" {
		return "", "", fmt.Errorf("JWT_SECRET 未从数据库加载, 无法生成令牌")
	}

	stamp := user.SecurityStamp.String()
	accessToken, err := auth.GenerateToken(user.ID, user.Roles, stamp, []byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, stamp, []byte(jwtSecret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret.String())
	if jwtSecret == "" {
		return "", fmt.Errorf("JWT_SECRET 未从数据库加载, 无法刷新令牌")
	}

	claims, err := auth.ParseToken(refreshToken, []byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("无效或过期的刷新令牌: %w", err)
	}

	internalUserID, err := idgen.DecodeUserPublicID(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("解码公共用户ID失败: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil {
		return "", fmt.Errorf("用户不存在")
	}
	if claims.SecurityStamp != user.SecurityStamp.String() {
		return "", fmt.Errorf("安全戳已更换，刷新令牌失效")
	}

	return auth.GenerateToken(user.ID, user.Roles, user.SecurityStamp.String(), []byte(jwtSecret))
}

// ParseAccessToken 负责解析和验证 access token。
// 签名校验通过后还要比对数据库中的当前安全戳，
// 角色或密码变更后签发的旧令牌在这里被拒绝。
func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret.String())
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET 未配置，无法解析令牌")
	}

	claims, err := auth.ParseToken(accessToken, []byte(jwtSecret))
	if err != nil {
		return nil, err
	}

	internalUserID, err := idgen.DecodeUserPublicID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("解码公共用户ID失败: %w", err)
	}
	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("用户不存在")
	}
	if claims.SecurityStamp != user.SecurityStamp.String() {
		return nil, fmt.Errorf("安全戳已更换，访问令牌失效")
	}

	return claims, nil
}

// --- HMAC 一次性签名令牌实现 ---

// GenerateSignedToken 生成一个新的签名令牌。identifier 预期是公共 ID。
func (s *tokenService) GenerateSignedToken(identifier string, duration time.Duration) (string, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret.String())
	if jwtSecret == "" {
		return "", fmt.Errorf("JWT_SECRET 未配置，无法生成签名令牌")
	}

	expiry := time.Now().Add(duration).Unix()
	dataToSign := fmt.Sprintf("%s:%d", identifier, expiry)

	h := hmac.New(sha256.New, []byte(jwtSecret))
	h.Write([]byte(dataToSign))
	signature := h.Sum(nil)

	encodedSignature := base64.URLEncoding.EncodeToString(signature)
	return fmt.Sprintf("%s:%d", encodedSignature, expiry), nil
}

// VerifySignedToken 验证签名令牌。identifier 预期是公共 ID。
func (s *tokenService) VerifySignedToken(identifier, sign string) error {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret.String())
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET 未配置，无法验证签名令牌")
	}

	parts := strings.Split(sign, ":")
	if len(parts) != 2 {
		return fmt.Errorf("令牌格式无效")
	}
	encodedSignatureFromURL := parts[0]
	expiryStr := parts[1]

	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return fmt.Errorf("令牌过期时间格式无效")
	}
	if time.Now().Unix() > expiry {
		return fmt.Errorf("令牌已过期")
	}

	dataToSign := fmt.Sprintf("%s:%d", identifier, expiry)
	h := hmac.New(sha256.New, []byte(jwtSecret))
	h.Write([]byte(dataToSign))
	expectedSignature := h.Sum(nil)

	signatureFromURL, err := base64.URLEncoding.DecodeString(encodedSignatureFromURL)
	if err != nil {
		return fmt.Errorf("令牌签名解码失败")
	}

	if !hmac.Equal(signatureFromURL, expectedSignature) {
		return fmt.Errorf("签名无效")
	}

	return nil
}

// ConsumeSignedToken 验证签名令牌并在缓存中标记为已使用。
func (s *tokenService) ConsumeSignedToken(ctx context.Context, identifier, sign string) error {
	if err := s.VerifySignedToken(identifier, sign); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("used_sign:%s:%s", identifier, sign)
	used, err := s.cacheSvc.Get(ctx, cacheKey)
	if err != nil {
		return fmt.Errorf("查询令牌使用状态失败: %w", err)
	}
	if used != "" {
		return fmt.Errorf("令牌已被使用")
	}

	// 标记时长覆盖令牌剩余有效期即可
	parts := strings.Split(sign, ":")
	expiry, _ := strconv.ParseInt(parts[1], 10, 64)
	ttl := time.Until(time.Unix(expiry, 0))
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.cacheSvc.Set(ctx, cacheKey, "1", ttl)
}
