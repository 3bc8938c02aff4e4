package ent

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
)

func seedUser(t *testing.T, repo repository.UserRepository, username, email string, confirmed bool) *model.User {
	t.Helper()
	u := &model.User{
		Username:       username,
		Email:          email,
		PasswordHash:   "$2a$10$fakehash",
		EmailConfirmed: confirmed,
	}
	if _, err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("写入用户 %s 失败: %v", username, err)
	}
	// 创建时间用于排序断言，保证先后可区分
	time.Sleep(5 * time.Millisecond)
	return u
}

func TestEntUserRepository_未知排序列回落到创建时间排序(t *testing.T) {
	repo := NewEntUserRepository(newTestClient(t))
	seedUser(t, repo, "zoe", "zoe@example.com", true)
	seedUser(t, repo, "alice", "alice@example.com", true)

	users, err := repo.GetPagified(context.Background(), &repository.Filter{SortName: "bogus"})
	if err != nil {
		t.Fatalf("未知排序列不应导致查询失败: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, 期望 2", len(users))
	}
	if users[0].Username != "zoe" {
		t.Errorf("首行 = %s, 期望按创建时间升序先返回 zoe", users[0].Username)
	}
}

func TestEntUserRepository_按用户名查找不存在返回双nil(t *testing.T) {
	repo := NewEntUserRepository(newTestClient(t))

	user, err := repo.FindByUsername(context.Background(), "nobody")
	if err != nil || user != nil {
		t.Errorf("(user, err) = (%v, %v), 期望 (nil, nil)", user, err)
	}
}

func TestEntUserRepository_创建时生成安全戳并回写(t *testing.T) {
	repo := NewEntUserRepository(newTestClient(t))
	u := seedUser(t, repo, "alice", "alice@example.com", true)

	if u.SecurityStamp == uuid.Nil {
		t.Error("创建后安全戳应回写到领域模型")
	}

	reloaded, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if reloaded.SecurityStamp != u.SecurityStamp {
		t.Errorf("安全戳 = %s, 期望 %s", reloaded.SecurityStamp, u.SecurityStamp)
	}
}

func TestEntUserRepository_更新持久化安全戳(t *testing.T) {
	repo := NewEntUserRepository(newTestClient(t))
	u := seedUser(t, repo, "alice", "alice@example.com", true)

	u.SecurityStamp = uuid.New()
	if err := repo.Update(context.Background(), u); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	reloaded, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if reloaded.SecurityStamp != u.SecurityStamp {
		t.Error("更换后的安全戳应写入数据库")
	}
}

func TestEntUserRepository_替换角色忽略未知角色名(t *testing.T) {
	client := newTestClient(t)
	userRepo := NewEntUserRepository(client)
	roleRepo := NewEntRoleRepository(client)

	if _, err := roleRepo.EnsureExists(context.Background(), model.RoleAdmin); err != nil {
		t.Fatalf("初始化角色失败: %v", err)
	}
	u := seedUser(t, userRepo, "alice", "alice@example.com", true)

	if err := userRepo.ReplaceRoles(context.Background(), u.ID, []string{model.RoleAdmin, "Ghost"}); err != nil {
		t.Fatalf("替换角色失败: %v", err)
	}

	reloaded, err := userRepo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if len(reloaded.Roles) != 1 || reloaded.Roles[0] != model.RoleAdmin {
		t.Errorf("角色 = %v, 期望只有 Admin", reloaded.Roles)
	}
}

func TestEntUserRepository_清理超期未确认账户(t *testing.T) {
	repo := NewEntUserRepository(newTestClient(t))
	stale := seedUser(t, repo, "stale", "stale@example.com", false)
	fresh := seedUser(t, repo, "fresh", "fresh@example.com", false)
	confirmed := seedUser(t, repo, "done", "done@example.com", true)

	// 截止时间落在 stale 与 fresh 的创建时间之间
	cutoff := fresh.CreatedAt

	deleted, err := repo.DeleteUnconfirmedBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("清理失败: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, 期望 1", deleted)
	}

	if _, err := repo.FindByID(context.Background(), stale.ID); err == nil {
		t.Error("超期未确认账户应被删除")
	}
	if _, err := repo.FindByID(context.Background(), fresh.ID); err != nil {
		t.Errorf("截止时间之后注册的账户不应被删除: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), confirmed.ID); err != nil {
		t.Errorf("已确认账户不应被删除: %v", err)
	}
}
