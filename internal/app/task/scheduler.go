/*
 * @Description: 定时任务调度器
 * @Author: 安知鱼
 * @Date: 2025-07-12 16:09:46
 * @LastEditTime: 2025-08-31 02:10:33
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron     *cron.Cron
	logger   *slog.Logger
	userRepo repository.UserRepository
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(userRepo repository.UserRepository) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:     c,
		logger:   logger,
		userRepo: userRepo,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// 清理超过宽限期仍未确认邮箱的账户
	purgeJob := NewPurgeUnconfirmedAccountsJob(s.userRepo)
	_, err := s.cron.AddJob("0 0 3 * * *", purgeJob)
	if err != nil {
		s.logger.Error("Failed to add 'PurgeUnconfirmedAccountsJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'PurgeUnconfirmedAccountsJob'", "schedule", "every day at 3:00:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
