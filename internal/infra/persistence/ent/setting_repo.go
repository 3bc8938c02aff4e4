/*
 * @Description: 配置仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-06-20 13:07:49
 * @LastEditTime: 2025-08-31 01:12:30
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/setting"
)

// entSettingRepository 是 SettingRepository 接口的 Ent 实现
type entSettingRepository struct {
	client *ent.Client
}

// NewEntSettingRepository 是 entSettingRepository 的构造函数
func NewEntSettingRepository(client *ent.Client) repository.SettingRepository {
	return &entSettingRepository{
		client: client,
	}
}

// Update 实现了批量更新配置项的接口，不存在的键会被创建。
// 为了保证原子性，整个更新过程在一个 Ent 事务中执行。
func (r *entSettingRepository) Update(ctx context.Context, settingsToUpdate map[string]string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	// 使用 Ent 推荐的模式来处理事务，确保在发生 panic 时也能回滚
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	for key, value := range settingsToUpdate {
		affected, err := tx.Setting.
			Update().
			Where(setting.ConfigKey(key)).
			SetValue(value).
			Save(ctx)
		if err == nil && affected == 0 {
			// 键不存在，转为创建
			_, err = tx.Setting.
				Create().
				SetConfigKey(key).
				SetValue(value).
				Save(ctx)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("更新配置失败: %v, 回滚事务也失败: %v", err, rbErr)
			}
			return err
		}
	}

	return tx.Commit()
}

// FindByKey 实现按键查找配置的接口
func (r *entSettingRepository) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	entSetting, err := r.client.Setting.
		Query().
		Where(setting.ConfigKey(key)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil //未找到时不返回错误
		}
		return nil, err
	}
	return toDomainSetting(entSetting), nil
}

// FindAll 实现获取所有配置的接口
func (r *entSettingRepository) FindAll(ctx context.Context) ([]*model.Setting, error) {
	entSettings, err := r.client.Setting.
		Query().
		All(ctx)
	if err != nil {
		return nil, err
	}

	domainSettings := make([]*model.Setting, len(entSettings))
	for i, po := range entSettings {
		domainSettings[i] = toDomainSetting(po)
	}
	return domainSettings, nil
}

// --- 数据转换辅助函数 (Mapping Helper) ---

// toDomainSetting 将 *ent.Setting (持久化对象) 转换为 *model.Setting (领域模型)
func toDomainSetting(s *ent.Setting) *model.Setting {
	if s == nil {
		return nil
	}
	return &model.Setting{
		ID:        uint(s.ID),
		ConfigKey: s.ConfigKey,
		Value:     s.Value,
		Comment:   s.Comment,
	}
}
