/*
 * @Description: Redis 缓存服务
 * @Author: 安知鱼
 * @Date: 2025-06-20 15:17:47
 * @LastEditTime: 2025-08-30 23:20:12
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService 定义了缓存服务的接口，提供了基础的 Get/Set/Delete 操作
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}

// redisCacheService 是 CacheService 的 Redis 实现
type redisCacheService struct {
	client *redis.Client
}

// NewCacheService 是 redisCacheService 的构造函数，通过依赖注入接收 Redis 客户端
func NewCacheService(client *redis.Client) CacheService {
	return &redisCacheService{
		client: client,
	}
}

// Set 实现了设置缓存的方法
func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

// Get 实现了获取缓存的方法
func (s *redisCacheService) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // Key 不存在，返回空字符串和 nil 错误，这是 Redis 的惯例
	}
	return val, err
}

// Delete 实现了删除缓存的方法
func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}
