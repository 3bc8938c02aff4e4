/*
 * @Description: cron 任务的日志与 panic 恢复装饰器
 * @Author: 安知鱼
 * @Date: 2025-06-29 22:36:09
 * @LastEditTime: 2025-08-31 02:14:26
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"reflect"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// JobWrapper 是 cron.JobWrapper 的类型别名，用于简化代码。
type JobWrapper = cron.JobWrapper

// NewLoggingWrapper 创建一个日志装饰器，
// 记录每次任务的开始、结束与耗时，并附带唯一的执行ID便于追踪。
func NewLoggingWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			executionID := uuid.New().String()
			jobName := getJobName(j)

			jobLogger := logger.With(
				slog.String("job_name", jobName),
				slog.String("execution_id", executionID),
			)

			startTime := time.Now()
			jobLogger.Info("Job execution started")

			j.Run()

			jobLogger.Info("Job execution finished", slog.Duration("duration", time.Since(startTime)))
		})
	}
}

// NewPanicRecoveryWrapper 创建一个 panic 恢复装饰器。
// 任务 panic 时记录错误与堆栈，不让单个任务拖垮整个进程。
func NewPanicRecoveryWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Job panicked",
						slog.String("job_name", getJobName(j)),
						slog.Any("panic", r),
						slog.String("stack_trace", string(debug.Stack())),
					)
				}
			}()

			j.Run()
		})
	}
}

// getJobName 返回任务的可读名称，优先使用任务自定义的 Name() 方法，
// 没有则通过反射取其类型名。
func getJobName(j cron.Job) string {
	if namedJob, ok := j.(interface{ Name() string }); ok {
		return namedJob.Name()
	}

	jobType := reflect.TypeOf(j)
	if jobType.Kind() == reflect.Ptr {
		return jobType.Elem().String()
	}
	return jobType.String()
}
