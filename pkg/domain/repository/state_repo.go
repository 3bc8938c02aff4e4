/*
 * @Description: 州参考数据操作的契约
 * @Author: 安知鱼
 * @Date: 2025-06-20 13:07:49
 * @LastEditTime: 2025-08-30 21:55:41
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
)

// StateRepository 定义了州参考数据操作的契约。
type StateRepository interface {
	Repository[model.State, uuid.UUID]

	// ExistsOtherWithName 判断除 excludeID 外是否已有同名的州。
	ExistsOtherWithName(ctx context.Context, excludeID uuid.UUID, name string) (bool, error)

	// ExistsOtherWithAbbreviation 判断除 excludeID 外是否已有同缩写的州。
	ExistsOtherWithAbbreviation(ctx context.Context, excludeID uuid.UUID, abbreviation string) (bool, error)
}
