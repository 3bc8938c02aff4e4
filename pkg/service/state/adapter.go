package state

import (
	"context"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
)

// adapter 负责州实体与传输对象之间的映射。
type adapter struct{}

func (adapter) MapAddDTO(_ context.Context, d *dto.StateDTO) (*model.State, error) {
	return &model.State{
		Name:         d.Name,
		Abbreviation: d.Abbreviation,
	}, nil
}

func (adapter) MapEditDTO(_ context.Context, d *dto.StateDTO, entity *model.State) error {
	entity.Name = d.Name
	entity.Abbreviation = d.Abbreviation
	return nil
}

func (adapter) MapToDTO(_ context.Context, entity *model.State) (*dto.StateDTO, error) {
	mapped := &dto.StateDTO{
		Name:         entity.Name,
		Abbreviation: entity.Abbreviation,
	}
	mapped.ID = entity.ID
	mapped.ConcurrencyStamp = entity.ConcurrencyStamp
	return mapped, nil
}
