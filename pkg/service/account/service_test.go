package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/security"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// --- 内存版用户仓储 ---

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func cloneUser(u *model.User) *model.User {
	cp := *u
	cp.Roles = append([]string(nil), u.Roles...)
	if u.LockoutUntil != nil {
		t := *u.LockoutUntil
		cp.LockoutUntil = &t
	}
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		cp.LastLoginAt = &t
	}
	return &cp
}

func (r *fakeUserRepo) Find(ctx context.Context, opts repository.FindOptions) ([]*model.User, error) {
	out := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *fakeUserRepo) GetPagified(ctx context.Context, filter *repository.Filter) ([]*model.User, error) {
	return r.Find(ctx, repository.FindOptions{})
}

func (r *fakeUserRepo) GetCount(ctx context.Context, filter *repository.Filter) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, constant.KeyNotFound(id)
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) Create(ctx context.Context, entity *model.User) (uint, error) {
	id := r.nextID
	r.nextID++
	entity.ID = id
	r.users[id] = cloneUser(entity)
	return id, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, entity *model.User) error {
	if _, ok := r.users[entity.ID]; !ok {
		return constant.KeyNotFound(entity.ID)
	}
	r.users[entity.ID] = cloneUser(entity)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) ReplaceRoles(ctx context.Context, userID uint, roleNames []string) error {
	u, ok := r.users[userID]
	if !ok {
		return constant.KeyNotFound(userID)
	}
	u.Roles = append([]string(nil), roleNames...)
	return nil
}

func (r *fakeUserRepo) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleted := 0
	for id, u := range r.users {
		if !u.EmailConfirmed && u.CreatedAt.Before(cutoff) {
			delete(r.users, id)
			deleted++
		}
	}
	return deleted, nil
}

// --- 确定性的令牌服务替身 ---

type fakeTokenService struct {
	used map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{used: make(map[string]bool)}
}

func (f *fakeTokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, error) {
	return fmt.Sprintf("access-%d", user.ID), fmt.Sprintf("refresh-%d", user.ID), nil
}

func (f *fakeTokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	return "access-refreshed", nil
}

func (f *fakeTokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) GenerateSignedToken(identifier string, duration time.Duration) (string, error) {
	return "sign(" + identifier + ")", nil
}

func (f *fakeTokenService) VerifySignedToken(identifier, sign string) error {
	if sign != "sign("+identifier+")" {
		return errors.New("签名无效")
	}
	return nil
}

func (f *fakeTokenService) ConsumeSignedToken(ctx context.Context, identifier, sign string) error {
	if err := f.VerifySignedToken(identifier, sign); err != nil {
		return err
	}
	if f.used[sign] {
		return errors.New("令牌已被使用")
	}
	f.used[sign] = true
	return nil
}

// --- 邮件发送记录器 ---

type sentEmail struct {
	kind   string
	to     string
	userID string
	sign   string
}

type fakeEmailService struct {
	sent []sentEmail
}

func (f *fakeEmailService) SendWelcomeEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "welcome", to: toEmail, userID: userID, sign: sign})
	return nil
}

func (f *fakeEmailService) SendEmailChangeEmail(ctx context.Context, newEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "email_change", to: newEmail, userID: userID, sign: sign})
	return nil
}

func (f *fakeEmailService) SendPasswordResetEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "password_reset", to: toEmail, userID: userID, sign: sign})
	return nil
}

// --- 测试脚手架 ---

type accountFixture struct {
	svc    Service
	repo   *fakeUserRepo
	tokens *fakeTokenService
	emails *fakeEmailService
	bus    *event.EventBus
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	repo := newFakeUserRepo()
	tokens := newFakeTokenService()
	emails := &fakeEmailService{}
	bus := event.NewEventBus()
	t.Cleanup(bus.Shutdown)
	return &accountFixture{
		svc:    NewService(repo, tokens, emails, bus),
		repo:   repo,
		tokens: tokens,
		emails: emails,
		bus:    bus,
	}
}

const testPassword = "Sup3r$ecret"

// seedUser 直接写入一个已确认邮箱的用户并返回其 ID。
func (f *accountFixture) seedUser(t *testing.T, username, email string) uint {
	t.Helper()
	hash, err := security.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	id, err := f.repo.Create(context.Background(), &model.User{
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		EmailConfirmed: true,
		Roles:          []string{model.RoleUser},
	})
	if err != nil {
		t.Fatalf("写入测试用户失败: %v", err)
	}
	return id
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        testPassword,
		ConfirmPassword: testPassword,
		AcceptTos:       true,
	}
}

// --- 注册 ---

func TestRegister_首位用户成为管理员并收到欢迎邮件(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.Register(context.Background(), registerRequest())
	if !res.WasSuccessful() {
		t.Fatalf("注册失败: %s", res.Message)
	}

	user, err := f.repo.FindByUsername(context.Background(), "alice")
	if err != nil || user == nil {
		t.Fatal("注册后应能找到用户")
	}
	if !user.HasRole(model.RoleAdmin) {
		t.Errorf("首位用户角色 = %v, 期望包含 Admin", user.Roles)
	}
	if user.EmailConfirmed {
		t.Error("新注册用户邮箱不应已确认")
	}

	if len(f.emails.sent) != 1 || f.emails.sent[0].kind != "welcome" {
		t.Fatalf("应发送一封欢迎邮件, 实际 %v", f.emails.sent)
	}
	if f.emails.sent[0].to != "alice@example.com" {
		t.Errorf("欢迎邮件收件人 = %s", f.emails.sent[0].to)
	}
}

func TestRegister_第二位用户是普通角色(t *testing.T) {
	f := newAccountFixture(t)
	f.seedUser(t, "admin", "admin@example.com")

	res := f.svc.Register(context.Background(), registerRequest())
	if !res.WasSuccessful() {
		t.Fatalf("注册失败: %s", res.Message)
	}

	user, _ := f.repo.FindByUsername(context.Background(), "alice")
	if user.HasRole(model.RoleAdmin) {
		t.Errorf("第二位用户不应是管理员, 角色 = %v", user.Roles)
	}
	if !user.HasRole(model.RoleUser) {
		t.Errorf("第二位用户角色 = %v, 期望包含 User", user.Roles)
	}
}

func TestRegister_蜜罐命中时伪装成功且不落库(t *testing.T) {
	f := newAccountFixture(t)

	req := registerRequest()
	req.SecretKeyField = "I am a bot"
	res := f.svc.Register(context.Background(), req)
	if !res.WasSuccessful() {
		t.Fatalf("蜜罐命中应伪装成功, 实际: %s", res.Message)
	}

	if total, _ := f.repo.CountAll(context.Background()); total != 0 {
		t.Errorf("机器人提交不应创建用户, 用户数 = %d", total)
	}
	if len(f.emails.sent) != 0 {
		t.Error("机器人提交不应发送邮件")
	}
}

func TestRegister_校验失败分支(t *testing.T) {
	f := newAccountFixture(t)
	f.seedUser(t, "taken", "taken@example.com")

	tests := []struct {
		name        string
		mutate      func(*dto.RegisterRequest)
		wantMessage string
	}{
		{
			name:        "未接受服务条款",
			mutate:      func(r *dto.RegisterRequest) { r.AcceptTos = false },
			wantMessage: constant.MsgMustAcceptTos,
		},
		{
			name:        "用户名已被占用",
			mutate:      func(r *dto.RegisterRequest) { r.Username = "taken" },
			wantMessage: constant.MsgUsernameTaken,
		},
		{
			name:        "邮箱已被占用",
			mutate:      func(r *dto.RegisterRequest) { r.Email = "taken@example.com" },
			wantMessage: constant.MsgEmailTaken,
		},
		{
			name: "密码强度不足",
			mutate: func(r *dto.RegisterRequest) {
				r.Password = "alllowercase1!"
				r.ConfirmPassword = r.Password
			},
			wantMessage: "Your new password must contain an uppercase letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			tt.mutate(req)
			res := f.svc.Register(context.Background(), req)
			if res.Err != result.ErrorUnprocessable {
				t.Errorf("错误类别 = %v, 期望 Unprocessable", res.Err)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("消息 = %q, 期望 %q", res.Message, tt.wantMessage)
			}
		})
	}
}

// --- 登录 ---

func TestLogin_成功返回会话令牌(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "alice",
		Password:    testPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("登录失败: %s", res.Message)
	}
	if res.Value == nil || res.Value.AccessToken == "" || res.Value.RefreshToken == "" {
		t.Fatal("登录成功应返回访问令牌和刷新令牌")
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if user.LastLoginAt == nil {
		t.Error("登录成功应记录最后登录时间")
	}
}

func TestLogin_支持邮箱作为账户名(t *testing.T) {
	f := newAccountFixture(t)
	f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "alice@example.com",
		Password:    testPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("用邮箱登录失败: %s", res.Message)
	}
}

func TestLogin_账户不存在(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "ghost",
		Password:    testPassword,
	})
	if res.Err != result.ErrorNotFound {
		t.Errorf("错误类别 = %v, 期望 NotFound", res.Err)
	}
	if res.Message != constant.MsgLoginFailedNotFound {
		t.Errorf("消息 = %q", res.Message)
	}
}

func TestLogin_密码错误(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "alice",
		Password:    "Wr0ng-password",
	})
	if res.Err != result.ErrorUnauthorized {
		t.Errorf("错误类别 = %v, 期望 Unauthorized", res.Err)
	}
	if res.Message != constant.MsgLoginFailedInvalid {
		t.Errorf("消息 = %q", res.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if user.AccessFailedCount != 1 {
		t.Errorf("失败计数 = %d, 期望 1", user.AccessFailedCount)
	}
}

func TestLogin_连续失败触发锁定(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	for i := 0; i < maxFailedAccessAttempts; i++ {
		f.svc.Login(context.Background(), &dto.LoginRequest{
			AccountName: "alice",
			Password:    "Wr0ng-password",
		})
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if user.LockoutUntil == nil {
		t.Fatal("达到失败阈值后应设置锁定时间")
	}

	// 锁定期间即使密码正确也拒绝登录，并告知解锁时间
	res := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "alice",
		Password:    testPassword,
	})
	if res.Err != result.ErrorUnauthorized {
		t.Errorf("错误类别 = %v, 期望 Unauthorized", res.Err)
	}
	if !strings.HasPrefix(res.Message, "Your account is currently locked.") {
		t.Errorf("消息 = %q, 期望锁定提示", res.Message)
	}
}

func TestLogin_未确认邮箱时补发确认邮件(t *testing.T) {
	f := newAccountFixture(t)
	res := f.svc.Register(context.Background(), registerRequest())
	if !res.WasSuccessful() {
		t.Fatalf("注册失败: %s", res.Message)
	}

	loginRes := f.svc.Login(context.Background(), &dto.LoginRequest{
		AccountName: "alice",
		Password:    testPassword,
	})
	if loginRes.Err != result.ErrorUnauthorized {
		t.Errorf("错误类别 = %v, 期望 Unauthorized", loginRes.Err)
	}
	if loginRes.Message != constant.MsgLoginFailedNotConfirmed {
		t.Errorf("消息 = %q", loginRes.Message)
	}

	// 注册一封 + 登录补发一封
	if len(f.emails.sent) != 2 || f.emails.sent[1].kind != "welcome" {
		t.Errorf("应补发欢迎邮件, 实际 %v", f.emails.sent)
	}
}

func TestLogin_蜜罐命中时伪装成功(t *testing.T) {
	f := newAccountFixture(t)

	req := &dto.LoginRequest{AccountName: "alice", Password: testPassword}
	req.SecretKeyField = "bot"
	res := f.svc.Login(context.Background(), req)
	if !res.WasSuccessful() {
		t.Errorf("蜜罐命中应伪装成功, 实际: %s", res.Message)
	}
	if res.Value != nil {
		t.Error("机器人不应拿到任何令牌")
	}
}

// --- 登出 ---

func TestLogout_始终是非法操作(t *testing.T) {
	f := newAccountFixture(t)
	if err := f.svc.Logout(); !errors.Is(err, constant.ErrInvalidOperation) {
		t.Errorf("Logout 应返回非法操作错误, 实际 %v", err)
	}
}

// --- 邮箱确认 ---

func TestConfirmAccount_完整流程(t *testing.T) {
	f := newAccountFixture(t)
	res := f.svc.Register(context.Background(), registerRequest())
	if !res.WasSuccessful() {
		t.Fatalf("注册失败: %s", res.Message)
	}

	mail := f.emails.sent[0]
	confirmRes := f.svc.ConfirmAccount(context.Background(), &dto.ConfirmAccountRequest{
		UserID:           mail.userID,
		VerificationCode: mail.sign,
	})
	if !confirmRes.WasSuccessful() {
		t.Fatalf("确认失败: %s", confirmRes.Message)
	}

	user, _ := f.repo.FindByUsername(context.Background(), "alice")
	if !user.EmailConfirmed {
		t.Error("确认后 EmailConfirmed 应为 true")
	}

	// 同一令牌不可重复使用
	again := f.svc.ConfirmAccount(context.Background(), &dto.ConfirmAccountRequest{
		UserID:           mail.userID,
		VerificationCode: mail.sign,
	})
	if again.Err != result.ErrorUnauthorized || again.Message != constant.MsgInvalidToken {
		t.Errorf("重复使用令牌应被拒绝, 实际 (%v, %q)", again.Err, again.Message)
	}
}

func TestConfirmAccount_非法用户ID(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.ConfirmAccount(context.Background(), &dto.ConfirmAccountRequest{
		UserID:           "not-a-real-id",
		VerificationCode: "whatever",
	})
	if res.Err != result.ErrorNotFound || res.Message != constant.MsgAccountErrorInvalidID {
		t.Errorf("非法用户ID应返回 NotFound, 实际 (%v, %q)", res.Err, res.Message)
	}
}

// --- 邮箱变更 ---

func TestEmailChange_完整流程(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	initRes := f.svc.InitiateEmailChange(context.Background(), id, &dto.InitiateEmailChangeRequest{
		Email:           "new@example.com",
		ConfirmPassword: testPassword,
	})
	if !initRes.WasSuccessful() {
		t.Fatalf("发起邮箱变更失败: %s", initRes.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if user.PendingEmail != "new@example.com" {
		t.Errorf("PendingEmail = %q", user.PendingEmail)
	}
	if len(f.emails.sent) != 1 || f.emails.sent[0].kind != "email_change" || f.emails.sent[0].to != "new@example.com" {
		t.Fatalf("确认邮件应发送到新邮箱, 实际 %v", f.emails.sent)
	}

	mail := f.emails.sent[0]
	performRes := f.svc.PerformEmailChange(context.Background(), id, &dto.PerformEmailChangeRequest{
		NewEmail:         "new@example.com",
		UserID:           mail.userID,
		VerificationCode: mail.sign,
	})
	if !performRes.WasSuccessful() {
		t.Fatalf("完成邮箱变更失败: %s", performRes.Message)
	}

	user, _ = f.repo.FindByID(context.Background(), id)
	if user.Email != "new@example.com" || user.PendingEmail != "" {
		t.Errorf("变更后 Email = %q, PendingEmail = %q", user.Email, user.PendingEmail)
	}
}

func TestInitiateEmailChange_密码错误(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.InitiateEmailChange(context.Background(), id, &dto.InitiateEmailChangeRequest{
		Email:           "new@example.com",
		ConfirmPassword: "Wr0ng-password",
	})
	if res.Err != result.ErrorUnauthorized || res.Message != constant.MsgLoginFailedInvalid {
		t.Errorf("密码错误应返回 Unauthorized, 实际 (%v, %q)", res.Err, res.Message)
	}
}

func TestPerformEmailChange_冲突分支(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	initRes := f.svc.InitiateEmailChange(context.Background(), id, &dto.InitiateEmailChangeRequest{
		Email:           "new@example.com",
		ConfirmPassword: testPassword,
	})
	if !initRes.WasSuccessful() {
		t.Fatalf("发起邮箱变更失败: %s", initRes.Message)
	}
	mail := f.emails.sent[0]

	t.Run("新邮箱与登记的待定邮箱不一致", func(t *testing.T) {
		res := f.svc.PerformEmailChange(context.Background(), id, &dto.PerformEmailChangeRequest{
			NewEmail:         "other@example.com",
			UserID:           mail.userID,
			VerificationCode: mail.sign,
		})
		if res.Err != result.ErrorDataConflict || res.Message != constant.MsgEmailErrorWrongEmail {
			t.Errorf("实际 (%v, %q)", res.Err, res.Message)
		}
	})

	t.Run("用户ID与登录账户不一致", func(t *testing.T) {
		otherID := f.seedUser(t, "bob", "bob@example.com")
		otherPublicID, err := idgen.GeneratePublicID(otherID, idgen.EntityTypeUser)
		if err != nil {
			t.Fatalf("生成公共ID失败: %v", err)
		}
		res := f.svc.PerformEmailChange(context.Background(), id, &dto.PerformEmailChangeRequest{
			NewEmail:         "new@example.com",
			UserID:           otherPublicID,
			VerificationCode: mail.sign,
		})
		if res.Err != result.ErrorDataConflict || res.Message != constant.MsgAccountErrorWrongID {
			t.Errorf("实际 (%v, %q)", res.Err, res.Message)
		}
	})

	t.Run("令牌无效", func(t *testing.T) {
		res := f.svc.PerformEmailChange(context.Background(), id, &dto.PerformEmailChangeRequest{
			NewEmail:         "new@example.com",
			UserID:           mail.userID,
			VerificationCode: "forged",
		})
		if res.Err != result.ErrorUnprocessable || res.Message != constant.MsgInvalidToken {
			t.Errorf("实际 (%v, %q)", res.Err, res.Message)
		}
	})
}

// --- 密码管理 ---

func TestChangePassword_成功后旧密码失效(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	const newPassword = "N3w-$ecret-pass"
	res := f.svc.ChangePassword(context.Background(), id, &dto.ChangePasswordRequest{
		CurrentPassword:    testPassword,
		NewPassword:        newPassword,
		ConfirmNewPassword: newPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("修改密码失败: %s", res.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if !security.CheckPasswordHash(newPassword, user.PasswordHash) {
		t.Error("新密码应能通过校验")
	}
	if security.CheckPasswordHash(testPassword, user.PasswordHash) {
		t.Error("旧密码不应再通过校验")
	}
}

func TestChangePassword_当前密码错误(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.ChangePassword(context.Background(), id, &dto.ChangePasswordRequest{
		CurrentPassword:    "Wr0ng-password",
		NewPassword:        "N3w-$ecret-pass",
		ConfirmNewPassword: "N3w-$ecret-pass",
	})
	if res.Err != result.ErrorUnauthorized || res.Message != constant.MsgLoginFailedInvalid {
		t.Errorf("实际 (%v, %q)", res.Err, res.Message)
	}
}

func TestForgotPassword_账户不存在也返回成功(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{AccountName: "ghost"})
	if !res.WasSuccessful() {
		t.Errorf("不应泄露账户是否存在, 实际: %s", res.Message)
	}
	if len(f.emails.sent) != 0 {
		t.Error("账户不存在时不应发送邮件")
	}
}

func TestForgotPassword_账户存在时发送重置邮件(t *testing.T) {
	f := newAccountFixture(t)
	f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{AccountName: "alice@example.com"})
	if !res.WasSuccessful() {
		t.Fatalf("忘记密码失败: %s", res.Message)
	}
	if len(f.emails.sent) != 1 || f.emails.sent[0].kind != "password_reset" {
		t.Fatalf("应发送重置邮件, 实际 %v", f.emails.sent)
	}
}

func TestResetPassword_成功并解除锁定(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	// 先把账户锁住
	lockoutEnd := time.Now().Add(time.Hour)
	user, _ := f.repo.FindByID(context.Background(), id)
	user.LockoutUntil = &lockoutEnd
	user.AccessFailedCount = 3
	if err := f.repo.Update(context.Background(), user); err != nil {
		t.Fatalf("预置锁定状态失败: %v", err)
	}

	forgotRes := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{AccountName: "alice"})
	if !forgotRes.WasSuccessful() {
		t.Fatalf("忘记密码失败: %s", forgotRes.Message)
	}
	mail := f.emails.sent[0]

	const newPassword = "N3w-$ecret-pass"
	res := f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		UserID:             mail.userID,
		VerificationCode:   mail.sign,
		NewPassword:        newPassword,
		ConfirmNewPassword: newPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("重置密码失败: %s", res.Message)
	}

	user, _ = f.repo.FindByID(context.Background(), id)
	if user.LockoutUntil != nil || user.AccessFailedCount != 0 {
		t.Error("重置密码应解除锁定并清零失败计数")
	}
	if !security.CheckPasswordHash(newPassword, user.PasswordHash) {
		t.Error("新密码应能通过校验")
	}
}

func TestResetPassword_非法用户ID(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		UserID:             "not-a-real-id",
		VerificationCode:   "whatever",
		NewPassword:        "N3w-$ecret-pass",
		ConfirmNewPassword: "N3w-$ecret-pass",
	})
	if res.Err != result.ErrorNotFound || res.Message != constant.MsgAccountErrorInvalidID {
		t.Errorf("实际 (%v, %q)", res.Err, res.Message)
	}
}

// --- 个人数据与注销 ---

func TestGetPersonalData_导出JSON(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.GetPersonalData(context.Background(), id)
	if !res.WasSuccessful() {
		t.Fatalf("导出个人数据失败: %s", res.Message)
	}

	payload := string(res.Value)
	for _, want := range []string{`"UserName":"alice"`, `"Email":"alice@example.com"`} {
		if !strings.Contains(payload, want) {
			t.Errorf("导出内容缺少 %s: %s", want, payload)
		}
	}
}

func TestDeleteAccount_删除后无法再查到(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.DeleteAccount(context.Background(), id)
	if !res.WasSuccessful() {
		t.Fatalf("注销账户失败: %s", res.Message)
	}
	if user, _ := f.repo.FindByUsername(context.Background(), "alice"); user != nil {
		t.Error("注销后不应再查到用户")
	}
}

func TestGetUserInfo_返回公共ID视图(t *testing.T) {
	f := newAccountFixture(t)
	id := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.GetUserInfo(context.Background(), id)
	if !res.WasSuccessful() {
		t.Fatalf("查询用户信息失败: %s", res.Message)
	}

	decoded, err := idgen.DecodeUserPublicID(res.Value.ID)
	if err != nil || decoded != id {
		t.Errorf("公共ID应可解码回内部ID, ID = %q", res.Value.ID)
	}
	if !res.Value.IsVerified {
		t.Error("已确认用户 IsVerified 应为 true")
	}
}

func TestGetUserInfo_用户不存在视为未登录(t *testing.T) {
	f := newAccountFixture(t)

	res := f.svc.GetUserInfo(context.Background(), 999)
	if res.Err != result.ErrorUnauthorized || res.Message != constant.MsgNotLoggedIn {
		t.Errorf("实际 (%v, %q)", res.Err, res.Message)
	}
}
