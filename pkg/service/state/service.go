/*
 * @Description: 州参考数据服务
 * @Author: 安知鱼
 * @Date: 2025-06-20 13:07:49
 * @LastEditTime: 2025-08-30 22:40:12
 * @LastEditors: 安知鱼
 */
package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/crud"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// Service 定义了州参考数据的业务接口。
type Service interface {
	Add(ctx context.Context, model *dto.StateDTO) result.Result[uuid.UUID]
	Edit(ctx context.Context, model *dto.StateDTO) result.Result[bool]
	Get(ctx context.Context, id uuid.UUID) result.Result[*dto.StateDTO]
	List(ctx context.Context, filter *repository.Filter) result.Result[dto.PagedResult[*dto.StateDTO]]
	Delete(ctx context.Context, id uuid.UUID) result.Result[bool]
}

// stateService 在通用 CRUD 服务之上叠加名称与缩写的唯一性校验。
type stateService struct {
	*crud.Service[model.State, *dto.StateDTO, uuid.UUID]
	repo repository.StateRepository
}

// NewService 是 stateService 的构造函数。
func NewService(repo repository.StateRepository) Service {
	return &stateService{
		Service: crud.NewService[model.State, *dto.StateDTO, uuid.UUID](repo, adapter{}, false),
		repo:    repo,
	}
}

// Add 创建一个新的州，创建前校验名称与缩写的唯一性。
func (s *stateService) Add(ctx context.Context, model *dto.StateDTO) result.Result[uuid.UUID] {
	if err := s.verifyStateUnique(ctx, model); err != nil {
		return result.FromError[uuid.UUID](err)
	}
	return s.Service.Add(ctx, model)
}

// Edit 更新一个州，更新前校验名称与缩写在其他记录中的唯一性。
func (s *stateService) Edit(ctx context.Context, model *dto.StateDTO) result.Result[bool] {
	if err := s.verifyStateUnique(ctx, model); err != nil {
		return result.FromError[bool](err)
	}
	return s.Service.Edit(ctx, model)
}

// verifyStateUnique 校验名称与缩写在除自身外的所有记录中唯一。
func (s *stateService) verifyStateUnique(ctx context.Context, model *dto.StateDTO) error {
	taken, err := s.repo.ExistsOtherWithName(ctx, model.ID, model.Name)
	if err != nil {
		return err
	}
	if taken {
		return constant.Conflict(constant.MsgStateDuplicateName)
	}

	taken, err = s.repo.ExistsOtherWithAbbreviation(ctx, model.ID, model.Abbreviation)
	if err != nil {
		return err
	}
	if taken {
		return constant.Conflict(constant.MsgStateDuplicateAbbreviation)
	}
	return nil
}
