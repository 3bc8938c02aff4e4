/*
 * @Description: 频率限制中间件
 * @Author: 安知鱼
 * @Date: 2025-11-08 00:00:00
 * @LastEditTime: 2025-08-31 01:35:12
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter 用于存储每个IP地址的限流器
type ipRateLimiter struct {
	limiters map[string]*limiterInfo
	mu       sync.RWMutex
	// 每个IP每分钟允许的请求数
	requestsPerMinute int
	// 突发请求数（允许短时间内的突发流量）
	burst int
	// 清理过期限流器的时间间隔
	cleanupInterval time.Duration
}

// limiterInfo 存储限流器及其最后访问时间
type limiterInfo struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

// newIPRateLimiter 创建一个新的IP限流器
func newIPRateLimiter(requestsPerMinute, burst int) *ipRateLimiter {
	limiter := &ipRateLimiter{
		limiters:          make(map[string]*limiterInfo),
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
		cleanupInterval:   5 * time.Minute,
	}

	// 启动定期清理协程
	go limiter.cleanupStaleEntries()

	return limiter
}

// getLimiter 获取指定IP的限流器
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	info, exists := i.limiters[ip]
	if !exists {
		// rate.Every(time.Minute / time.Duration(i.requestsPerMinute)) 表示每分钟允许 i.requestsPerMinute 个请求
		limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(i.requestsPerMinute)), i.burst)
		info = &limiterInfo{
			limiter:      limiter,
			lastAccessed: time.Now(),
		}
		i.limiters[ip] = info
	} else {
		info.lastAccessed = time.Now()
	}

	return info.limiter
}

// cleanupStaleEntries 定期清理超过一定时间未使用的限流器
func (i *ipRateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(i.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		i.mu.Lock()
		for ip, info := range i.limiters {
			// 如果超过10分钟未访问，则删除该限流器
			if time.Since(info.lastAccessed) > 10*time.Minute {
				delete(i.limiters, ip)
			}
		}
		i.mu.Unlock()
	}
}

// getClientIP 获取客户端真实IP地址
func getClientIP(c *gin.Context) string {
	// 优先从 X-Real-IP 获取
	clientIP := c.GetHeader("X-Real-IP")
	if clientIP != "" {
		return clientIP
	}

	// 其次从 X-Forwarded-For 获取（可能包含多个IP，取第一个）
	clientIP = c.GetHeader("X-Forwarded-For")
	if clientIP != "" {
		if ip, _, err := net.SplitHostPort(clientIP); err == nil {
			return ip
		}
		return clientIP
	}

	// 最后从 RemoteAddr 获取
	if ip, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return ip
	}

	return c.Request.RemoteAddr
}

// CustomRateLimit 创建一个自定义的频率限制中间件，
// 用于注册、登录、忘记密码等容易被滥用的公开端点。
// requestsPerMinute: 每分钟允许的请求数
// burst: 突发请求数
func CustomRateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(requestsPerMinute, burst)

	return func(c *gin.Context) {
		ip := getClientIP(c)
		ipLimiter := limiter.getLimiter(ip)

		if !ipLimiter.Allow() {
			response.Fail(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
