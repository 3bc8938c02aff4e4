/*
 * @Description: 站点配置服务，数据库配置加载到内存缓存
 * @Author: 安知鱼
 * @Date: 2025-06-20 13:07:49
 * @LastEditTime: 2025-08-30 23:38:27
 * @LastEditors: 安知鱼
 */
package setting

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
)

// TopicSettingUpdated 定义了配置更新事件的主题（Topic）
const TopicSettingUpdated = "setting:updated"

// SettingUpdatedEvent 定义了配置更新事件的数据结构
type SettingUpdatedEvent struct {
	Key   string
	Value string
}

// defaultSettings 是代码内置的配置默认值，数据库中的同名配置优先。
var defaultSettings = map[string]string{
	constant.KeyAppName.String():  "Qingyu Admin",
	constant.KeySiteURL.String():  "http://localhost:8091",
	constant.KeySMTPPort.String(): "587",
}

// SettingService 定义了配置服务的接口
type SettingService interface {
	LoadAllSettings(ctx context.Context) error
	Get(key string) string
	GetBool(key string) bool
	UpdateSettings(ctx context.Context, settingsToUpdate map[string]string) error
}

// settingService 是 SettingService 接口的实现
type settingService struct {
	repo     repository.SettingRepository
	cache    map[string]string
	mu       sync.RWMutex
	eventBus *event.EventBus
}

// NewSettingService 是 settingService 的构造函数
func NewSettingService(repo repository.SettingRepository, bus *event.EventBus) SettingService {
	return &settingService{
		repo:     repo,
		cache:    make(map[string]string),
		eventBus: bus,
	}
}

// LoadAllSettings 从代码默认值和数据库中加载所有配置项到内存缓存。
func (s *settingService) LoadAllSettings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newCache := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		newCache[key] = value
	}

	dbSettings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cache = newCache
		log.Printf("⚠️ 警告: 从数据库加载配置失败: %v。服务将使用代码中定义的默认配置。", err)
		return err
	}

	for _, dbSetting := range dbSettings {
		newCache[dbSetting.ConfigKey] = dbSetting.Value
	}

	s.cache = newCache

	log.Printf("所有站点配置已成功加载到缓存，共 %d 项。", len(s.cache))
	return nil
}

// UpdateSettings 更新一个或多个配置项，并发布变更事件
func (s *settingService) UpdateSettings(ctx context.Context, settingsToUpdate map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Update(ctx, settingsToUpdate); err != nil {
		return err
	}

	for key, value := range settingsToUpdate {
		s.cache[key] = value
		s.eventBus.Publish(event.Topic(TopicSettingUpdated), SettingUpdatedEvent{
			Key:   key,
			Value: value,
		})
	}

	log.Printf("成功更新 %d 个站点配置项，并已发布变更事件。", len(settingsToUpdate))
	return nil
}

// Get 根据键获取配置值
func (s *settingService) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key]
}

// GetBool 根据键获取布尔配置值
func (s *settingService) GetBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(s.Get(key)))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}
