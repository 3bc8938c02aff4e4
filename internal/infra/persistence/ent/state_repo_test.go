package ent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	_ "github.com/ncruces/go-sqlite3/vfs/memdb"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/enttest"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
)

// newTestClient 为每个测试打开一个独立的内存数据库并完成建表。
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:/%s.db?vfs=memdb&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedState(t *testing.T, repo repository.StateRepository, name, abbreviation string) *model.State {
	t.Helper()
	s := &model.State{Name: name, Abbreviation: abbreviation}
	if _, err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("写入州 %s 失败: %v", name, err)
	}
	return s
}

func TestEntStateRepository_未知排序列回落到名称排序(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	seedState(t, repo, "Texas", "TX")
	seedState(t, repo, "Alabama", "AL")
	seedState(t, repo, "California", "CA")

	states, err := repo.GetPagified(context.Background(), &repository.Filter{SortName: "bogus"})
	if err != nil {
		t.Fatalf("未知排序列不应导致查询失败: %v", err)
	}

	got := make([]string, len(states))
	for i, s := range states {
		got[i] = s.Name
	}
	want := []string{"Alabama", "California", "Texas"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("排序结果 = %v, 期望按名称升序 %v", got, want)
		}
	}
}

func TestEntStateRepository_按缩写降序排序(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	seedState(t, repo, "Alabama", "AL")
	seedState(t, repo, "Texas", "TX")

	states, err := repo.GetPagified(context.Background(), &repository.Filter{
		SortName:       "abbreviation",
		SortDescending: true,
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(states) != 2 || states[0].Abbreviation != "TX" {
		t.Errorf("首行缩写 = %v, 期望 TX", states)
	}
}

func TestEntStateRepository_搜索与分页(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	seedState(t, repo, "Alabama", "AL")
	seedState(t, repo, "Alaska", "AK")
	seedState(t, repo, "Texas", "TX")

	filter := &repository.Filter{SearchTerm: "ala", Page: 1, PageSize: 1}
	states, err := repo.GetPagified(context.Background(), filter)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("len(states) = %d, 期望分页大小 1", len(states))
	}

	count, err := repo.GetCount(context.Background(), &repository.Filter{SearchTerm: "ala"})
	if err != nil {
		t.Fatalf("计数失败: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, 期望 2", count)
	}
}

func TestEntStateRepository_按主键查找不存在(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("err = %v, 期望未找到错误", err)
	}
}

func TestEntStateRepository_更新时并发戳不一致返回冲突(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	s := seedState(t, repo, "Texas", "TX")

	stale := &model.State{Name: "Texas", Abbreviation: "TX"}
	stale.ID = s.ID
	stale.ConcurrencyStamp = uuid.New()

	if err := repo.Update(context.Background(), stale); !errors.Is(err, constant.ErrConcurrency) {
		t.Errorf("err = %v, 期望并发冲突", err)
	}
}

func TestEntStateRepository_更新成功换新并发戳(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	s := seedState(t, repo, "Texas", "TX")
	oldStamp := s.ConcurrencyStamp

	s.Name = "Utah"
	s.Abbreviation = "UT"
	if err := repo.Update(context.Background(), s); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if s.ConcurrencyStamp == oldStamp {
		t.Error("成功更新后并发戳应更换")
	}

	reloaded, err := repo.FindByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if reloaded.Name != "Utah" || reloaded.ConcurrencyStamp != s.ConcurrencyStamp {
		t.Errorf("回读结果 = %+v", reloaded)
	}
}

func TestEntStateRepository_删除不存在的主键静默成功(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))

	if err := repo.Delete(context.Background(), uuid.New()); err != nil {
		t.Errorf("删除不存在的主键不应报错: %v", err)
	}
}

func TestEntStateRepository_重复名称或缩写被唯一约束拒绝(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	seedState(t, repo, "Texas", "TX")

	if _, err := repo.Create(context.Background(), &model.State{Name: "Texas", Abbreviation: "XX"}); err == nil {
		t.Error("重复的州名应被数据库唯一约束拒绝")
	}
	if _, err := repo.Create(context.Background(), &model.State{Name: "Texarkana", Abbreviation: "TX"}); err == nil {
		t.Error("重复的缩写应被数据库唯一约束拒绝")
	}
}

func TestEntStateRepository_排除自身的重名检查(t *testing.T) {
	repo := NewEntStateRepository(newTestClient(t))
	s := seedState(t, repo, "Texas", "TX")
	seedState(t, repo, "Utah", "UT")

	exists, err := repo.ExistsOtherWithName(context.Background(), s.ID, "texas")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if exists {
		t.Error("同一条记录自身不应视为重名")
	}

	exists, err = repo.ExistsOtherWithName(context.Background(), s.ID, "utah")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if !exists {
		t.Error("忽略大小写的重名应被检出")
	}
}
