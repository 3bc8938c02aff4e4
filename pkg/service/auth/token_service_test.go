package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/utility"
)

// fakeSettingService 只返回内存 map 中的配置。
type fakeSettingService struct {
	values map[string]string
}

func (f *fakeSettingService) LoadAllSettings(context.Context) error { return nil }
func (f *fakeSettingService) Get(key string) string                 { return f.values[key] }
func (f *fakeSettingService) GetBool(key string) bool               { return f.values[key] == "true" }
func (f *fakeSettingService) UpdateSettings(_ context.Context, updates map[string]string) error {
	for k, v := range updates {
		f.values[k] = v
	}
	return nil
}

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeUserRepo 只支持会话令牌校验所需的按 ID 查找。
type fakeUserRepo struct {
	users map[uint]*model.User
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, constant.KeyNotFound(id)
	}
	return u, nil
}

func (r *fakeUserRepo) Find(context.Context, repository.FindOptions) ([]*model.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetPagified(context.Context, *repository.Filter) ([]*model.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetCount(context.Context, *repository.Filter) (int, error) { return 0, nil }
func (r *fakeUserRepo) Create(context.Context, *model.User) (uint, error)         { return 0, nil }
func (r *fakeUserRepo) Update(context.Context, *model.User) error                 { return nil }
func (r *fakeUserRepo) Delete(context.Context, uint) error                        { return nil }
func (r *fakeUserRepo) FindByUsername(context.Context, string) (*model.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(context.Context, string) (*model.User, error) { return nil, nil }
func (r *fakeUserRepo) CountAll(context.Context) (int, error)                    { return 0, nil }
func (r *fakeUserRepo) ReplaceRoles(context.Context, uint, []string) error       { return nil }
func (r *fakeUserRepo) DeleteUnconfirmedBefore(context.Context, time.Time) (int, error) {
	return 0, nil
}

func newTestTokenService(users ...*model.User) TokenService {
	settingSvc := &fakeSettingService{values: map[string]string{
		constant.KeyJWTSecret.String(): "unit-test-secret",
	}}
	repo := &fakeUserRepo{users: make(map[uint]*model.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return NewTokenService(repo, settingSvc, utility.NewMemoryCacheService())
}

func TestSignedToken_往返校验(t *testing.T) {
	svc := newTestTokenService()

	sign, err := svc.GenerateSignedToken("abcd", time.Minute*30)
	if err != nil {
		t.Fatalf("生成签名令牌失败: %v", err)
	}

	if err := svc.VerifySignedToken("abcd", sign); err != nil {
		t.Errorf("合法签名校验失败: %v", err)
	}
}

func TestSignedToken_标识符不匹配校验失败(t *testing.T) {
	svc := newTestTokenService()

	sign, err := svc.GenerateSignedToken("abcd", time.Minute*30)
	if err != nil {
		t.Fatalf("生成签名令牌失败: %v", err)
	}

	if err := svc.VerifySignedToken("efgh", sign); err == nil {
		t.Error("不匹配的标识符应校验失败")
	}
}

func TestSignedToken_过期令牌校验失败(t *testing.T) {
	svc := newTestTokenService()

	sign, err := svc.GenerateSignedToken("abcd", -time.Minute)
	if err != nil {
		t.Fatalf("生成签名令牌失败: %v", err)
	}

	if err := svc.VerifySignedToken("abcd", sign); err == nil {
		t.Error("过期令牌应校验失败")
	}
}

func TestSignedToken_篡改后校验失败(t *testing.T) {
	svc := newTestTokenService()

	sign, err := svc.GenerateSignedToken("abcd", time.Minute*30)
	if err != nil {
		t.Fatalf("生成签名令牌失败: %v", err)
	}

	tampered := "AAAA" + sign[4:]
	if err := svc.VerifySignedToken("abcd", tampered); err == nil {
		t.Error("被篡改的令牌应校验失败")
	}
}

func TestConsumeSignedToken_二次消费失败(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	sign, err := svc.GenerateSignedToken("abcd", time.Minute*30)
	if err != nil {
		t.Fatalf("生成签名令牌失败: %v", err)
	}

	if err := svc.ConsumeSignedToken(ctx, "abcd", sign); err != nil {
		t.Fatalf("首次消费失败: %v", err)
	}
	if err := svc.ConsumeSignedToken(ctx, "abcd", sign); err == nil {
		t.Error("同一令牌的二次消费应失败")
	}
}

func TestGenerateSessionTokens_可解析出原始用户(t *testing.T) {
	ctx := context.Background()

	user := &model.User{ID: 7, Roles: []string{"Admin"}, SecurityStamp: uuid.New()}
	svc := newTestTokenService(user)
	accessToken, refreshToken, err := svc.GenerateSessionTokens(ctx, user)
	if err != nil {
		t.Fatalf("生成会话令牌失败: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("会话令牌不应为空")
	}

	claims, err := svc.ParseAccessToken(ctx, accessToken)
	if err != nil {
		t.Fatalf("解析访问令牌失败: %v", err)
	}

	userID, err := idgen.DecodeUserPublicID(claims.UserID)
	if err != nil {
		t.Fatalf("解码公共ID失败: %v", err)
	}
	if userID != 7 {
		t.Errorf("用户ID = %d, 期望 7", userID)
	}
	if !claims.IsAdmin() {
		t.Error("令牌应携带 Admin 角色")
	}
}

func TestGenerateSessionTokens_缺少密钥时报错(t *testing.T) {
	settingSvc := &fakeSettingService{values: map[string]string{}}
	svc := NewTokenService(nil, settingSvc, utility.NewMemoryCacheService())

	if _, _, err := svc.GenerateSessionTokens(context.Background(), &model.User{ID: 1}); err == nil {
		t.Error("缺少 JWT 密钥时应返回错误")
	}
}

func TestParseAccessToken_安全戳更换后旧令牌失效(t *testing.T) {
	ctx := context.Background()

	user := &model.User{ID: 9, Roles: []string{"Admin"}, SecurityStamp: uuid.New()}
	svc := newTestTokenService(user)

	accessToken, refreshToken, err := svc.GenerateSessionTokens(ctx, user)
	if err != nil {
		t.Fatalf("生成会话令牌失败: %v", err)
	}
	if _, err := svc.ParseAccessToken(ctx, accessToken); err != nil {
		t.Fatalf("戳未变时访问令牌应有效: %v", err)
	}

	// 模拟角色或密码变更后的安全戳轮换
	user.SecurityStamp = uuid.New()

	if _, err := svc.ParseAccessToken(ctx, accessToken); err == nil {
		t.Error("安全戳更换后旧访问令牌应失效")
	}
	if _, err := svc.RefreshAccessToken(ctx, refreshToken); err == nil {
		t.Error("安全戳更换后旧刷新令牌应失效")
	}
}

func TestParseAccessToken_用户已删除时令牌失效(t *testing.T) {
	ctx := context.Background()

	user := &model.User{ID: 11, Roles: []string{"User"}, SecurityStamp: uuid.New()}
	svc := newTestTokenService(user)

	accessToken, _, err := svc.GenerateSessionTokens(ctx, user)
	if err != nil {
		t.Fatalf("生成会话令牌失败: %v", err)
	}

	empty := newTestTokenService()
	if _, err := empty.ParseAccessToken(ctx, accessToken); err == nil {
		t.Error("用户不存在时访问令牌应失效")
	}
}
