/*
 * @Description: 统一监听账户域事件并记录审计日志。
 * @Author: 安知鱼
 * @Date: 2025-08-31 02:20:15
 * @LastEditTime: 2025-08-31 02:20:15
 * @LastEditors: 安知鱼
 */
package listener

import (
	"log/slog"
	"os"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
)

// AuditListener 订阅所有账户域事件，为安全审计输出结构化日志。
// 它只做记录，不参与业务流程，处理器失败不影响主流程。
type AuditListener struct {
	logger *slog.Logger
}

// NewAuditListener 是 AuditListener 的构造函数，
// 构造时订阅全部账户域事件主题。
func NewAuditListener(eventBus *event.EventBus) *AuditListener {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	listener := &AuditListener{
		logger: slog.New(slogHandler).With("system", "audit"),
	}

	topics := []event.Topic{
		event.UserRegistered,
		event.UserLoggedIn,
		event.UserConfirmed,
		event.EmailChanged,
		event.PasswordChanged,
		event.AccountDeleted,
		event.UserRolesChanged,
	}
	for _, topic := range topics {
		t := topic
		eventBus.Subscribe(t, func(payload interface{}) {
			listener.handle(t, payload)
		})
	}
	return listener
}

// handle 记录一条审计日志，负载约定为用户主键。
func (l *AuditListener) handle(topic event.Topic, payload interface{}) {
	userID, ok := payload.(uint)
	if !ok {
		l.logger.Warn("unexpected event payload type",
			slog.String("topic", string(topic)),
			slog.Any("payload", payload),
		)
		return
	}

	l.logger.Info("account event",
		slog.String("topic", string(topic)),
		slog.Uint64("user_id", uint64(userID)),
	)
}
