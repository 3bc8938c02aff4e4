/*
 * @Description: 面向任意实体的通用 CRUD 服务
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 22:28:44
 * @LastEditors: 安知鱼
 */
package crud

import (
	"context"
	"log"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// Service 将仓储与映射器组合为一套完整的 CRUD 业务操作。
// 所有底层错误都经由 result.FromError 翻译为统一的失败结果。
type Service[E any, D EntityDTO[K], K comparable] struct {
	repo    repository.Repository[E, K]
	adapter Adapter[E, D]

	// usesHoneypot 开启后，实现了蜜罐接口的传输对象在 Add 时
	// 会先做机器人检查
	usesHoneypot bool
}

// NewService 构造一个通用 CRUD 服务。
func NewService[E any, D EntityDTO[K], K comparable](
	repo repository.Repository[E, K],
	adapter Adapter[E, D],
	usesHoneypot bool,
) *Service[E, D, K] {
	return &Service[E, D, K]{
		repo:         repo,
		adapter:      adapter,
		usesHoneypot: usesHoneypot,
	}
}

// Add 创建一条新记录并返回其主键。
// 蜜罐命中时直接返回合成的成功结果（零值主键），不落库，
// 让机器人无法分辨提交是否生效。
func (s *Service[E, D, K]) Add(ctx context.Context, model D) result.Result[K] {
	if s.usesHoneypot {
		if hp, ok := any(model).(dto.SpambotCheck); ok {
			log.Printf("表单提交耗时 %.2f 秒", hp.CompletionSeconds())
			if hp.IsSpambot() {
				log.Printf("检测到机器人提交！蜜罐字段内容为 %q", hp.HoneypotValue())
				var zero K
				return result.Ok(zero)
			}
		}
	}

	entity, err := s.adapter.MapAddDTO(ctx, model)
	if err != nil {
		return result.FromError[K](err)
	}

	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.FromError[K](err)
	}
	return result.Ok(id)
}

// Edit 更新一条已有记录。
// 客户端带回的并发戳会被复制到实体上，由仓储层完成比对。
func (s *Service[E, D, K]) Edit(ctx context.Context, model D) result.Result[bool] {
	entity, err := s.repo.FindByID(ctx, model.PrimaryKey())
	if err != nil {
		return result.FromError[bool](err)
	}

	if err := s.adapter.MapEditDTO(ctx, model, entity); err != nil {
		return result.FromError[bool](err)
	}
	if setter, ok := any(entity).(stampSetter); ok {
		setter.SetStamp(model.Stamp())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return result.FromError[bool](err)
	}
	return result.Ok(true)
}

// Get 按主键返回一条记录。
func (s *Service[E, D, K]) Get(ctx context.Context, id K) result.Result[D] {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.FromError[D](err)
	}

	mapped, err := s.adapter.MapToDTO(ctx, entity)
	if err != nil {
		return result.FromError[D](err)
	}
	return result.Ok(mapped)
}

// List 返回记录列表。filter 为 nil 时返回全部记录，
// 否则按过滤器搜索、排序并分页。Items 永远不为 nil。
func (s *Service[E, D, K]) List(ctx context.Context, filter *repository.Filter) result.Result[dto.PagedResult[D]] {
	var (
		entities []*E
		err      error
	)
	if filter == nil {
		entities, err = s.repo.Find(ctx, repository.FindOptions{})
	} else {
		entities, err = s.repo.GetPagified(ctx, filter)
	}
	if err != nil {
		return result.FromError[dto.PagedResult[D]](err)
	}

	items := make([]D, 0, len(entities))
	for _, entity := range entities {
		mapped, mapErr := s.adapter.MapToDTO(ctx, entity)
		if mapErr != nil {
			return result.FromError[dto.PagedResult[D]](mapErr)
		}
		items = append(items, mapped)
	}

	total, err := s.repo.GetCount(ctx, filter)
	if err != nil {
		return result.FromError[dto.PagedResult[D]](err)
	}

	return result.Ok(dto.PagedResult[D]{
		Items:      items,
		TotalCount: total,
	})
}

// Delete 按主键删除一条记录，主键不存在时同样返回成功。
func (s *Service[E, D, K]) Delete(ctx context.Context, id K) result.Result[bool] {
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.FromError[bool](err)
	}
	return result.Ok(true)
}
