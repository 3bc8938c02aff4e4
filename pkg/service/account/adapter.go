/*
 * @Description: 用户模型到传输对象的映射
 * @Author: 安知鱼
 * @Date: 2025-06-28 10:14:02
 * @LastEditTime: 2025-08-31 00:18:09
 * @LastEditors: 安知鱼
 */
package account

import (
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
)

// MapUserToDTO 将用户领域模型映射为对外视图，数据库主键
// 编码为公共 ID，角色列表保证非 nil。
func MapUserToDTO(user *model.User) (*dto.UserDTO, error) {
	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return nil, err
	}

	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}

	return &dto.UserDTO{
		ID:         publicID,
		Username:   user.Username,
		Email:      user.Email,
		IsVerified: user.EmailConfirmed,
		Roles:      roles,
	}, nil
}
