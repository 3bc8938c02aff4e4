package useradmin

import (
	"context"
	"errors"
	"fmt"
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
	existing, ok := r.users[entity.ID]
	if !ok {
		return constant.KeyNotFound(entity.ID)
	}
	// 与真实仓储保持一致：Update 不触碰角色边，角色只经 ReplaceRoles 变更。
	cp := cloneUser(entity)
	cp.Roles = append([]string(nil), existing.Roles...)
	r.users[entity.ID] = cp
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
	return 0, nil
}

type fakeRoleRepo struct {
	roles []*model.Role
}

func (r *fakeRoleRepo) FindAll(ctx context.Context) ([]*model.Role, error) {
	return r.roles, nil
}

func (r *fakeRoleRepo) FindByName(ctx context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) EnsureExists(ctx context.Context, name string) (*model.Role, error) {
	if role, _ := r.FindByName(ctx, name); role != nil {
		return role, nil
	}
	role := &model.Role{ID: uint(len(r.roles) + 1), Name: name}
	r.roles = append(r.roles, role)
	return role, nil
}

type fakeTokenService struct{}

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
	return f.VerifySignedToken(identifier, sign)
}

type sentEmail struct {
	kind string
	to   string
	sign string
}

type fakeEmailService struct {
	sent []sentEmail
}

func (f *fakeEmailService) SendWelcomeEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "welcome", to: toEmail, sign: sign})
	return nil
}

func (f *fakeEmailService) SendEmailChangeEmail(ctx context.Context, newEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "email_change", to: newEmail, sign: sign})
	return nil
}

func (f *fakeEmailService) SendPasswordResetEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	f.sent = append(f.sent, sentEmail{kind: "password_reset", to: toEmail, sign: sign})
	return nil
}

type adminFixture struct {
	svc    Service
	repo   *fakeUserRepo
	roles  *fakeRoleRepo
	emails *fakeEmailService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	repo := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: []*model.Role{
		{ID: 1, Name: model.RoleAdmin},
		{ID: 2, Name: model.RoleUser},
	}}
	emails := &fakeEmailService{}
	bus := event.NewEventBus()
	t.Cleanup(bus.Shutdown)
	return &adminFixture{
		svc:    NewService(repo, roles, &fakeTokenService{}, emails, bus),
		repo:   repo,
		roles:  roles,
		emails: emails,
	}
}

// seedUser 写入一个已确认的用户并返回其 (内部ID, 公共ID)。
func (f *adminFixture) seedUser(t *testing.T, username, email string) (uint, string) {
	t.Helper()
	id, err := f.repo.Create(context.Background(), &model.User{
		Username:       username,
		Email:          email,
		PasswordHash:   "$2a$10$fakehash",
		EmailConfirmed: true,
		Roles:          []string{model.RoleUser},
	})
	if err != nil {
		t.Fatalf("写入测试用户失败: %v", err)
	}
	publicID, err := idgen.GeneratePublicID(id, idgen.EntityTypeUser)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	return id, publicID
}

func TestGetAllUsers_返回分页视图(t *testing.T) {
	f := newAdminFixture(t)
	f.seedUser(t, "alice", "alice@example.com")
	f.seedUser(t, "bob", "bob@example.com")

	res := f.svc.GetAllUsers(context.Background(), &repository.Filter{})
	if !res.WasSuccessful() {
		t.Fatalf("查询用户列表失败: %s", res.Message)
	}
	if res.Value.TotalCount != 2 || len(res.Value.Items) != 2 {
		t.Errorf("TotalCount = %d, len(Items) = %d", res.Value.TotalCount, len(res.Value.Items))
	}
	for _, item := range res.Value.Items {
		if _, err := idgen.DecodeUserPublicID(item.ID); err != nil {
			t.Errorf("列表项应使用公共ID, 实际 %q", item.ID)
		}
	}
}

func TestGetUserData_按公共ID查询(t *testing.T) {
	f := newAdminFixture(t)
	_, publicID := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.GetUserData(context.Background(), publicID)
	if !res.WasSuccessful() {
		t.Fatalf("查询用户失败: %s", res.Message)
	}
	if res.Value.Username != "alice" {
		t.Errorf("Username = %q", res.Value.Username)
	}
}

func TestGetUserData_非法公共ID(t *testing.T) {
	f := newAdminFixture(t)

	res := f.svc.GetUserData(context.Background(), "not-a-real-id")
	if res.Err != result.ErrorNotFound || res.Message != constant.MsgAccountErrorInvalidID {
		t.Errorf("实际 (%v, %q)", res.Err, res.Message)
	}
}

func TestUpdateUserEmail_登记待定邮箱并发送确认邮件(t *testing.T) {
	f := newAdminFixture(t)
	id, publicID := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.UpdateUserEmail(context.Background(), &dto.UserChangeEmailDTO{
		UserID: publicID,
		Email:  "new@example.com",
	})
	if !res.WasSuccessful() {
		t.Fatalf("变更邮箱失败: %s", res.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if user.PendingEmail != "new@example.com" {
		t.Errorf("PendingEmail = %q", user.PendingEmail)
	}
	// 旧邮箱在用户本人确认前保持不变
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, 确认前不应变化", user.Email)
	}
	if len(f.emails.sent) != 1 || f.emails.sent[0].kind != "email_change" || f.emails.sent[0].to != "new@example.com" {
		t.Fatalf("确认邮件应发送到新邮箱, 实际 %v", f.emails.sent)
	}
}

func TestUpdateUserPassword_直接重设(t *testing.T) {
	f := newAdminFixture(t)
	id, publicID := f.seedUser(t, "alice", "alice@example.com")

	const newPassword = "N3w-$ecret-pass"
	res := f.svc.UpdateUserPassword(context.Background(), &dto.UserChangePasswordDTO{
		UserID:             publicID,
		NewPassword:        newPassword,
		ConfirmNewPassword: newPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("重设密码失败: %s", res.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if !security.CheckPasswordHash(newPassword, user.PasswordHash) {
		t.Error("新密码应能通过校验")
	}
}

func TestUpdateUserPassword_强度不足(t *testing.T) {
	f := newAdminFixture(t)
	_, publicID := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.UpdateUserPassword(context.Background(), &dto.UserChangePasswordDTO{
		UserID:             publicID,
		NewPassword:        "alllowercase1!",
		ConfirmNewPassword: "alllowercase1!",
	})
	if res.Err != result.ErrorUnprocessable {
		t.Errorf("错误类别 = %v, 期望 Unprocessable", res.Err)
	}
}

func TestGetAvailableRoles_返回全部角色名(t *testing.T) {
	f := newAdminFixture(t)

	res := f.svc.GetAvailableRoles(context.Background())
	if !res.WasSuccessful() {
		t.Fatalf("查询角色失败: %s", res.Message)
	}
	if len(res.Value) != 2 || res.Value[0] != model.RoleAdmin || res.Value[1] != model.RoleUser {
		t.Errorf("角色列表 = %v", res.Value)
	}
}

func TestUpdateUserRoles_整体替换(t *testing.T) {
	f := newAdminFixture(t)
	id, publicID := f.seedUser(t, "alice", "alice@example.com")

	res := f.svc.UpdateUserRoles(context.Background(), &dto.UserUpdateRolesDTO{
		UserID: publicID,
		Roles:  []string{model.RoleAdmin},
	})
	if !res.WasSuccessful() {
		t.Fatalf("替换角色失败: %s", res.Message)
	}

	user, _ := f.repo.FindByID(context.Background(), id)
	if len(user.Roles) != 1 || user.Roles[0] != model.RoleAdmin {
		t.Errorf("角色 = %v, 期望只有 Admin", user.Roles)
	}
}

func TestUpdateUserRoles_替换后换新安全戳(t *testing.T) {
	f := newAdminFixture(t)
	id, publicID := f.seedUser(t, "alice", "alice@example.com")

	before, _ := f.repo.FindByID(context.Background(), id)

	res := f.svc.UpdateUserRoles(context.Background(), &dto.UserUpdateRolesDTO{
		UserID: publicID,
		Roles:  []string{model.RoleUser},
	})
	if !res.WasSuccessful() {
		t.Fatalf("替换角色失败: %s", res.Message)
	}

	after, _ := f.repo.FindByID(context.Background(), id)
	if after.SecurityStamp == before.SecurityStamp {
		t.Error("替换角色后安全戳应更换，使旧会话令牌失效")
	}
}

func TestUpdateUserPassword_重设后换新安全戳(t *testing.T) {
	f := newAdminFixture(t)
	id, publicID := f.seedUser(t, "alice", "alice@example.com")

	before, _ := f.repo.FindByID(context.Background(), id)

	const newPassword = "N3w-$ecret-pass"
	res := f.svc.UpdateUserPassword(context.Background(), &dto.UserChangePasswordDTO{
		UserID:             publicID,
		NewPassword:        newPassword,
		ConfirmNewPassword: newPassword,
	})
	if !res.WasSuccessful() {
		t.Fatalf("重设密码失败: %s", res.Message)
	}

	after, _ := f.repo.FindByID(context.Background(), id)
	if after.SecurityStamp == before.SecurityStamp {
		t.Error("重设密码后安全戳应更换，使旧会话令牌失效")
	}
}
