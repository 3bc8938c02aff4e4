/*
 * @Description: 仓储层的泛型契约与分页过滤器
 * @Author: 安知鱼
 * @Date: 2025-06-15 10:02:11
 * @LastEditTime: 2025-08-30 21:52:30
 * @LastEditors: 安知鱼
 */
package repository

import "context"

// 分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Filter 是列表查询的统一过滤器，直接从查询字符串绑定。
// Page 从 1 开始计数。
type Filter struct {
	SearchTerm     string `form:"searchTerm"`
	SortName       string `form:"sortName"`
	SortDescending bool   `form:"sortDescending"`
	Page           int    `form:"page"`
	PageSize       int    `form:"pageSize"`
}

// Normalize 将非法的分页参数回落到默认值。
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

// Offset 返回当前页对应的偏移量。
func (f *Filter) Offset() int {
	f.Normalize()
	return f.PageSize * (f.Page - 1)
}

// Limit 返回当前页的记录数上限。
func (f *Filter) Limit() int {
	f.Normalize()
	return f.PageSize
}

// FindOptions 控制非分页查询的截取范围，零值表示不限制。
type FindOptions struct {
	Skip int
	Take int
}

// Repository 定义了所有仓储实现都应具备的基础操作。
// 排序与搜索策略由各实现自行声明：未识别的 SortName 回落到
// 默认排序列，绝不返回错误。
type Repository[E any, K comparable] interface {
	// Find 返回满足截取范围的实体列表。
	Find(ctx context.Context, opts FindOptions) ([]*E, error)

	// GetPagified 按过滤器执行搜索、排序与分页。
	GetPagified(ctx context.Context, filter *Filter) ([]*E, error)

	// GetCount 返回应用搜索条件后的总记录数，filter 可以为 nil。
	GetCount(ctx context.Context, filter *Filter) (int, error)

	// FindByID 根据主键查找实体，不存在时返回未找到错误。
	FindByID(ctx context.Context, id K) (*E, error)

	// Create 创建一个新的实体并返回其主键。
	Create(ctx context.Context, entity *E) (K, error)

	// Update 更新一个已存在的实体。
	// 带并发戳的实体在更新前重新读取数据库中的最新戳进行比对，
	// 不一致时返回并发冲突错误，成功时写入新生成的戳。
	Update(ctx context.Context, entity *E) error

	// Delete 根据主键删除实体，主键不存在时静默成功。
	Delete(ctx context.Context, id K) error
}
