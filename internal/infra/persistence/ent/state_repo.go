/*
 * @Description: 州参考数据仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-08-30 21:05:44
 * @LastEditTime: 2025-08-31 00:58:21
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/predicate"
	"github.com/anzhiyu-c/qingyu-admin/ent/state"
)

// stateSortFields 是允许的排序列，未识别的列回落到名称排序。
var stateSortFields = map[string]string{
	"name":         state.FieldName,
	"abbreviation": state.FieldAbbreviation,
}

// entStateRepository 是 StateRepository 接口的 Ent 实现
type entStateRepository struct {
	client *ent.Client
}

// NewEntStateRepository 是 entStateRepository 的构造函数
func NewEntStateRepository(client *ent.Client) repository.StateRepository {
	return &entStateRepository{client: client}
}

func (r *entStateRepository) Find(ctx context.Context, opts repository.FindOptions) ([]*model.State, error) {
	query := r.client.State.Query().Order(ent.Asc(state.FieldName))
	if opts.Skip > 0 {
		query = query.Offset(opts.Skip)
	}
	if opts.Take > 0 {
		query = query.Limit(opts.Take)
	}

	entStates, err := query.All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainStates(entStates), nil
}

func (r *entStateRepository) GetPagified(ctx context.Context, filter *repository.Filter) ([]*model.State, error) {
	filter.Normalize()

	query := r.client.State.Query().
		Where(searchStates(filter.SearchTerm)...)

	sortField := state.FieldName
	if f, ok := stateSortFields[filter.SortName]; ok {
		sortField = f
	}
	if filter.SortDescending {
		query = query.Order(ent.Desc(sortField))
	} else {
		query = query.Order(ent.Asc(sortField))
	}

	entStates, err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainStates(entStates), nil
}

func (r *entStateRepository) GetCount(ctx context.Context, filter *repository.Filter) (int, error) {
	query := r.client.State.Query()
	if filter != nil {
		query = query.Where(searchStates(filter.SearchTerm)...)
	}
	return query.Count(ctx)
}

func (r *entStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.State, error) {
	entState, err := r.client.State.Query().
		Where(state.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.KeyNotFound(id)
		}
		return nil, err
	}
	return toDomainState(entState), nil
}

func (r *entStateRepository) Create(ctx context.Context, entity *model.State) (uuid.UUID, error) {
	created, err := r.client.State.Create().
		SetName(entity.Name).
		SetAbbreviation(entity.Abbreviation).
		Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	// 主键与并发戳由数据库侧生成，同步回领域模型
	entity.ID = created.ID
	entity.ConcurrencyStamp = created.ConcurrencyStamp
	return created.ID, nil
}

// Update 更新前重新读取数据库中的并发戳进行比对，
// 不一致说明记录已被他人修改，成功时写入新生成的戳。
func (r *entStateRepository) Update(ctx context.Context, entity *model.State) error {
	current, err := r.client.State.Query().
		Where(state.ID(entity.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.KeyNotFound(entity.ID)
		}
		return err
	}
	if current.ConcurrencyStamp != entity.ConcurrencyStamp {
		return constant.ErrConcurrency
	}

	newStamp := uuid.New()
	_, err = r.client.State.UpdateOneID(entity.ID).
		SetName(entity.Name).
		SetAbbreviation(entity.Abbreviation).
		SetConcurrencyStamp(newStamp).
		Save(ctx)
	if err != nil {
		return err
	}

	entity.ConcurrencyStamp = newStamp
	return nil
}

// Delete 按主键删除，主键不存在时静默成功。
func (r *entStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.State.Delete().
		Where(state.ID(id)).
		Exec(ctx)
	return err
}

func (r *entStateRepository) ExistsOtherWithName(ctx context.Context, excludeID uuid.UUID, name string) (bool, error) {
	return r.client.State.Query().
		Where(
			state.IDNEQ(excludeID),
			state.NameEqualFold(name),
		).
		Exist(ctx)
}

func (r *entStateRepository) ExistsOtherWithAbbreviation(ctx context.Context, excludeID uuid.UUID, abbreviation string) (bool, error) {
	return r.client.State.Query().
		Where(
			state.IDNEQ(excludeID),
			state.AbbreviationEqualFold(abbreviation),
		).
		Exist(ctx)
}

// searchStates 把搜索词展开成名称/缩写的模糊匹配条件
func searchStates(searchTerm string) []predicate.State {
	if searchTerm == "" {
		return nil
	}
	return []predicate.State{
		state.Or(
			state.NameContainsFold(searchTerm),
			state.AbbreviationContainsFold(searchTerm),
		),
	}
}

// --- 数据转换辅助函数 (Mapping Helper) ---

func toDomainState(s *ent.State) *model.State {
	if s == nil {
		return nil
	}
	out := &model.State{
		Name:         s.Name,
		Abbreviation: s.Abbreviation,
	}
	out.ID = s.ID
	out.ConcurrencyStamp = s.ConcurrencyStamp
	return out
}

func toDomainStates(entStates []*ent.State) []*model.State {
	domainStates := make([]*model.State, len(entStates))
	for i, s := range entStates {
		domainStates[i] = toDomainState(s)
	}
	return domainStates
}
