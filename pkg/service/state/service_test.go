package state

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

// fakeStateRepo 是内存版的州仓储。
type fakeStateRepo struct {
	states map[uuid.UUID]*model.State
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: make(map[uuid.UUID]*model.State)}
}

func (r *fakeStateRepo) Find(_ context.Context, _ repository.FindOptions) ([]*model.State, error) {
	out := make([]*model.State, 0, len(r.states))
	for _, s := range r.states {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeStateRepo) GetPagified(ctx context.Context, _ *repository.Filter) ([]*model.State, error) {
	return r.Find(ctx, repository.FindOptions{})
}

func (r *fakeStateRepo) GetCount(_ context.Context, _ *repository.Filter) (int, error) {
	return len(r.states), nil
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

func (r *fakeStateRepo) ExistsOtherWithName(_ context.Context, excludeID uuid.UUID, name string) (bool, error) {
	for _, s := range r.states {
		if s.ID != excludeID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStateRepo) ExistsOtherWithAbbreviation(_ context.Context, excludeID uuid.UUID, abbreviation string) (bool, error) {
	for _, s := range r.states {
		if s.ID != excludeID && strings.EqualFold(s.Abbreviation, abbreviation) {
			return true, nil
		}
	}
	return false, nil
}

func seedState(t *testing.T, svc Service, name, abbr string) *dto.StateDTO {
	t.Helper()
	res := svc.Add(context.Background(), &dto.StateDTO{Name: name, Abbreviation: abbr})
	if !res.WasSuccessful() {
		t.Fatalf("创建 %s 失败: %s", name, res.Message)
	}
	got := svc.Get(context.Background(), res.Value)
	if !got.WasSuccessful() {
		t.Fatalf("回读 %s 失败: %s", name, got.Message)
	}
	return got.Value
}

func TestAdd_重复名称返回DataConflict(t *testing.T) {
	svc := NewService(newFakeStateRepo())
	seedState(t, svc, "Indiana", "IN")

	res := svc.Add(context.Background(), &dto.StateDTO{Name: "Indiana", Abbreviation: "IA"})
	if res.Err != result.ErrorDataConflict {
		t.Fatalf("错误类别 = %v, 期望 ErrorDataConflict", res.Err)
	}
	if res.Message != "A State with that name already exists." {
		t.Errorf("消息 = %q, 与预期文案不符", res.Message)
	}
}

func TestAdd_重复缩写返回DataConflict(t *testing.T) {
	svc := NewService(newFakeStateRepo())
	seedState(t, svc, "Indiana", "IN")

	res := svc.Add(context.Background(), &dto.StateDTO{Name: "Iowa", Abbreviation: "IN"})
	if res.Err != result.ErrorDataConflict {
		t.Fatalf("错误类别 = %v, 期望 ErrorDataConflict", res.Err)
	}
	if res.Message != "A State with that abbreviation already exists." {
		t.Errorf("消息 = %q, 与预期文案不符", res.Message)
	}
}

func TestEdit_唯一性校验排除自身(t *testing.T) {
	svc := NewService(newFakeStateRepo())
	existing := seedState(t, svc, "Indiana", "IN")

	// 保持名称与缩写不变，只应与其他记录比对，编辑自身不应冲突
	edit := &dto.StateDTO{Name: "Indiana", Abbreviation: "IN"}
	edit.ID = existing.ID
	edit.ConcurrencyStamp = existing.ConcurrencyStamp

	if res := svc.Edit(context.Background(), edit); !res.WasSuccessful() {
		t.Errorf("编辑自身被唯一性校验拦截: %s", res.Message)
	}
}

func TestEdit_撞上其他记录的名称返回DataConflict(t *testing.T) {
	svc := NewService(newFakeStateRepo())
	seedState(t, svc, "Indiana", "IN")
	target := seedState(t, svc, "Ohio", "OH")

	edit := &dto.StateDTO{Name: "Indiana", Abbreviation: "OH"}
	edit.ID = target.ID
	edit.ConcurrencyStamp = target.ConcurrencyStamp

	res := svc.Edit(context.Background(), edit)
	if res.Err != result.ErrorDataConflict {
		t.Fatalf("错误类别 = %v, 期望 ErrorDataConflict", res.Err)
	}
}

func TestAdd_成功创建返回主键(t *testing.T) {
	svc := NewService(newFakeStateRepo())
	res := svc.Add(context.Background(), &dto.StateDTO{Name: "Indiana", Abbreviation: "IN"})
	if !res.WasSuccessful() {
		t.Fatalf("创建失败: %s", res.Message)
	}
	if res.Value == uuid.Nil {
		t.Error("创建成功应返回非零主键")
	}
}
