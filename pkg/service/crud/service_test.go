package crud

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// fakeStateRepo 是一个内存版的州仓储，行为与数据库实现保持一致：
// 更新前比对并发戳，成功写入后更换新戳，删除不存在的主键静默成功。
type fakeStateRepo struct {
	states map[uuid.UUID]*model.State
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: make(map[uuid.UUID]*model.State)}
}

func (r *fakeStateRepo) Find(_ context.Context, opts repository.FindOptions) ([]*model.State, error) {
	var out []*model.State
	for _, s := range r.states {
		copied := *s
		out = append(out, &copied)
	}
	if opts.Skip > 0 && opts.Skip < len(out) {
		out = out[opts.Skip:]
	}
	if opts.Take > 0 && opts.Take < len(out) {
		out = out[:opts.Take]
	}
	return out, nil
}

func (r *fakeStateRepo) GetPagified(ctx context.Context, filter *repository.Filter) ([]*model.State, error) {
	return r.Find(ctx, repository.FindOptions{Skip: filter.Offset(), Take: filter.Limit()})
}

func (r *fakeStateRepo) GetCount(_ context.Context, filter *repository.Filter) (int, error) {
	count := 0
	for _, s := range r.states {
		if filter != nil && filter.SearchTerm != "" &&
			!strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeStateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.State, error) {
	s, ok := r.states[id]
	if !ok {
		return nil, constant.KeyNotFound(id)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeStateRepo) Create(_ context.Context, entity *model.State) (uuid.UUID, error) {
	entity.ID = uuid.New()
	entity.ConcurrencyStamp = uuid.New()
	copied := *entity
	r.states[entity.ID] = &copied
	return entity.ID, nil
}

func (r *fakeStateRepo) Update(_ context.Context, entity *model.State) error {
	stored, ok := r.states[entity.ID]
	if !ok {
		return constant.KeyNotFound(entity.ID)
	}
	if stored.ConcurrencyStamp != entity.ConcurrencyStamp {
		return constant.ErrConcurrency
	}
	entity.ConcurrencyStamp = uuid.New()
	copied := *entity
	r.states[entity.ID] = &copied
	return nil
}

func (r *fakeStateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.states, id)
	return nil
}

// stateAdapter 是测试用的州映射器。
type stateAdapter struct{}

func (stateAdapter) MapAddDTO(_ context.Context, d *dto.StateDTO) (*model.State, error) {
	return &model.State{Name: d.Name, Abbreviation: d.Abbreviation}, nil
}

func (stateAdapter) MapEditDTO(_ context.Context, d *dto.StateDTO, entity *model.State) error {
	entity.Name = d.Name
	entity.Abbreviation = d.Abbreviation
	return nil
}

func (stateAdapter) MapToDTO(_ context.Context, entity *model.State) (*dto.StateDTO, error) {
	mapped := &dto.StateDTO{Name: entity.Name, Abbreviation: entity.Abbreviation}
	mapped.ID = entity.ID
	mapped.ConcurrencyStamp = entity.ConcurrencyStamp
	return mapped, nil
}

func newStateService(repo repository.Repository[model.State, uuid.UUID]) *Service[model.State, *dto.StateDTO, uuid.UUID] {
	return NewService[model.State, *dto.StateDTO, uuid.UUID](repo, stateAdapter{}, false)
}

func mustAdd(t *testing.T, svc *Service[model.State, *dto.StateDTO, uuid.UUID], name, abbr string) uuid.UUID {
	t.Helper()
	res := svc.Add(context.Background(), &dto.StateDTO{Name: name, Abbreviation: abbr})
	if !res.WasSuccessful() {
		t.Fatalf("创建 %s 失败: %s", name, res.Message)
	}
	return res.Value
}

func TestService_增删改查(t *testing.T) {
	repo := newFakeStateRepo()
	svc := newStateService(repo)
	ctx := context.Background()

	id := mustAdd(t, svc, "Indiana", "IN")
	if id == uuid.Nil {
		t.Fatal("创建成功时应返回非零主键")
	}

	got := svc.Get(ctx, id)
	if !got.WasSuccessful() {
		t.Fatalf("查询失败: %s", got.Message)
	}
	if got.Value.Name != "Indiana" || got.Value.Abbreviation != "IN" {
		t.Errorf("查询结果 = %+v, 与创建内容不符", got.Value)
	}
	if got.Value.ConcurrencyStamp == uuid.Nil {
		t.Error("查询结果应携带并发戳")
	}

	edit := &dto.StateDTO{Name: "Indiana", Abbreviation: "ID"}
	edit.ID = id
	edit.ConcurrencyStamp = got.Value.ConcurrencyStamp
	if res := svc.Edit(ctx, edit); !res.WasSuccessful() {
		t.Fatalf("更新失败: %s", res.Message)
	}

	if res := svc.Delete(ctx, id); !res.WasSuccessful() {
		t.Fatalf("删除失败: %s", res.Message)
	}
	if res := svc.Get(ctx, id); res.Err != result.ErrorNotFound {
		t.Errorf("删除后查询的错误类别 = %v, 期望 ErrorNotFound", res.Err)
	}
}

func TestService_编辑不存在的记录返回NotFound(t *testing.T) {
	svc := newStateService(newFakeStateRepo())

	missing := &dto.StateDTO{Name: "Ohio", Abbreviation: "OH"}
	missing.ID = uuid.New()

	res := svc.Edit(context.Background(), missing)
	if res.Err != result.ErrorNotFound {
		t.Errorf("错误类别 = %v, 期望 ErrorNotFound", res.Err)
	}
	if want := "Entity with ID " + missing.ID.String() + " was not found"; res.Message != want {
		t.Errorf("消息 = %q, 期望 %q", res.Message, want)
	}
}

func TestService_过期并发戳返回DatabaseConcurrency(t *testing.T) {
	repo := newFakeStateRepo()
	svc := newStateService(repo)
	ctx := context.Background()

	id := mustAdd(t, svc, "Texas", "TX")
	stale := svc.Get(ctx, id).Value

	// 第一次更新成功，数据库里的并发戳随之更换
	first := &dto.StateDTO{Name: "Texas", Abbreviation: "TE"}
	first.ID = id
	first.ConcurrencyStamp = stale.ConcurrencyStamp
	if res := svc.Edit(ctx, first); !res.WasSuccessful() {
		t.Fatalf("第一次更新失败: %s", res.Message)
	}

	// 用旧戳再次更新应失败
	second := &dto.StateDTO{Name: "Texas", Abbreviation: "TX"}
	second.ID = id
	second.ConcurrencyStamp = stale.ConcurrencyStamp
	res := svc.Edit(ctx, second)
	if res.Err != result.ErrorDatabaseConcurrency {
		t.Fatalf("错误类别 = %v, 期望 ErrorDatabaseConcurrency", res.Err)
	}
	if res.Message != constant.ErrConcurrency.Error() {
		t.Errorf("消息 = %q, 期望并发冲突提示", res.Message)
	}
}

func TestService_删除不存在的记录仍然成功(t *testing.T) {
	svc := newStateService(newFakeStateRepo())
	if res := svc.Delete(context.Background(), uuid.New()); !res.WasSuccessful() {
		t.Errorf("删除不存在的主键应静默成功, 实际失败: %s", res.Message)
	}
}

func TestService_列表结果永不为nil(t *testing.T) {
	svc := newStateService(newFakeStateRepo())

	res := svc.List(context.Background(), &repository.Filter{})
	if !res.WasSuccessful() {
		t.Fatalf("列表查询失败: %s", res.Message)
	}
	if res.Value.Items == nil {
		t.Error("空结果的 Items 不应为 nil")
	}
	if res.Value.TotalCount != 0 {
		t.Errorf("TotalCount = %d, 期望 0", res.Value.TotalCount)
	}
}

func TestService_空过滤器返回全部记录(t *testing.T) {
	repo := newFakeStateRepo()
	svc := newStateService(repo)

	mustAdd(t, svc, "Indiana", "IN")
	mustAdd(t, svc, "Ohio", "OH")
	mustAdd(t, svc, "Texas", "TX")

	res := svc.List(context.Background(), nil)
	if !res.WasSuccessful() {
		t.Fatalf("列表查询失败: %s", res.Message)
	}
	if len(res.Value.Items) != 3 || res.Value.TotalCount != 3 {
		t.Errorf("Items=%d TotalCount=%d, 期望均为 3", len(res.Value.Items), res.Value.TotalCount)
	}
}

// spamStateDTO 为蜜罐测试附加隐藏字段。
type spamStateDTO struct {
	dto.Entity[uuid.UUID]
	dto.Honeypot
	Name         string
	Abbreviation string
}

type spamStateAdapter struct{}

func (spamStateAdapter) MapAddDTO(_ context.Context, d *spamStateDTO) (*model.State, error) {
	return &model.State{Name: d.Name, Abbreviation: d.Abbreviation}, nil
}

func (spamStateAdapter) MapEditDTO(_ context.Context, d *spamStateDTO, entity *model.State) error {
	entity.Name = d.Name
	entity.Abbreviation = d.Abbreviation
	return nil
}

func (spamStateAdapter) MapToDTO(_ context.Context, entity *model.State) (*spamStateDTO, error) {
	mapped := &spamStateDTO{Name: entity.Name, Abbreviation: entity.Abbreviation}
	mapped.ID = entity.ID
	return mapped, nil
}

func TestService_蜜罐命中时不落库且返回合成成功(t *testing.T) {
	repo := newFakeStateRepo()
	svc := NewService[model.State, *spamStateDTO, uuid.UUID](repo, spamStateAdapter{}, true)

	spam := &spamStateDTO{Name: "Indiana", Abbreviation: "IN"}
	spam.SecretKeyField = "https://spam.example.com"

	res := svc.Add(context.Background(), spam)
	if !res.WasSuccessful() {
		t.Fatalf("蜜罐命中时应返回成功结果, 实际失败: %s", res.Message)
	}
	if res.Value != uuid.Nil {
		t.Errorf("合成成功应返回零值主键, 实际为 %s", res.Value)
	}
	if len(repo.states) != 0 {
		t.Errorf("蜜罐命中时不应写入任何记录, 实际写入 %d 条", len(repo.states))
	}
}

func TestService_蜜罐未命中时正常落库(t *testing.T) {
	repo := newFakeStateRepo()
	svc := NewService[model.State, *spamStateDTO, uuid.UUID](repo, spamStateAdapter{}, true)

	human := &spamStateDTO{Name: "Indiana", Abbreviation: "IN"}
	human.TimeToComplete = 42.5

	res := svc.Add(context.Background(), human)
	if !res.WasSuccessful() {
		t.Fatalf("正常提交失败: %s", res.Message)
	}
	if res.Value == uuid.Nil {
		t.Error("正常提交应返回真实主键")
	}
	if len(repo.states) != 1 {
		t.Errorf("记录数 = %d, 期望 1", len(repo.states))
	}
}
