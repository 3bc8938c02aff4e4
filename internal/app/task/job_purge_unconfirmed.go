/*
 * @Description: 清理长期未确认邮箱的账户
 * @Author: 安知鱼
 * @Date: 2025-08-31 02:12:07
 * @LastEditTime: 2025-08-31 02:12:07
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
)

// unconfirmedAccountGracePeriod 是注册后允许保持未确认状态的宽限期。
const unconfirmedAccountGracePeriod = 7 * 24 * time.Hour

// PurgeUnconfirmedAccountsJob 负责删除注册后超过宽限期仍未确认邮箱的账户，
// 避免被抢注的用户名和邮箱永久占用。
type PurgeUnconfirmedAccountsJob struct {
	userRepo repository.UserRepository
}

// NewPurgeUnconfirmedAccountsJob 是任务的构造函数。
func NewPurgeUnconfirmedAccountsJob(userRepo repository.UserRepository) *PurgeUnconfirmedAccountsJob {
	return &PurgeUnconfirmedAccountsJob{userRepo: userRepo}
}

// Run 是 Job 接口要求实现的方法。
func (j *PurgeUnconfirmedAccountsJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-unconfirmedAccountGracePeriod)

	deleted, err := j.userRepo.DeleteUnconfirmedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("错误: 任务 '%s' 在清理未确认账户时失败: %v", j.Name(), err)
		return
	}
	if deleted > 0 {
		log.Printf("任务 '%s' 执行完毕，清理了 %d 个未确认账户。", j.Name(), deleted)
	}
}

// Name 方法返回任务的可读名称。
func (j *PurgeUnconfirmedAccountsJob) Name() string {
	return "PurgeUnconfirmedAccountsJob"
}
