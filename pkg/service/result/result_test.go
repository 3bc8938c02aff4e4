package result

import (
	"errors"
	"testing"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
)

func TestFromError_错误分类(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantErr     ServiceError
		wantMessage string
	}{
		{
			name:        "并发冲突错误翻译为DatabaseConcurrency",
			err:         constant.ErrConcurrency,
			wantErr:     ErrorDatabaseConcurrency,
			wantMessage: "The database entry has been updated since you last accessed it. Please reload the page and try again.",
		},
		{
			name:        "主键未找到错误翻译为NotFound",
			err:         constant.KeyNotFound(42),
			wantErr:     ErrorNotFound,
			wantMessage: "Entity with ID 42 was not found",
		},
		{
			name:        "数据冲突错误透传消息",
			err:         constant.Conflict(constant.MsgStateDuplicateName),
			wantErr:     ErrorDataConflict,
			wantMessage: "A State with that name already exists.",
		},
		{
			name:        "业务规则错误归为Unknown并透传消息",
			err:         constant.Domain("That operation is not available right now."),
			wantErr:     ErrorUnknown,
			wantMessage: "That operation is not available right now.",
		},
		{
			name:        "带sql字样的错误按数据库错误提示",
			err:         errors.New("driver: bad connection executing SQL statement"),
			wantErr:     ErrorUnknown,
			wantMessage: "There was a database error. Please contact the IT team if your problem persists.",
		},
		{
			name:        "其余错误按未知错误提示",
			err:         errors.New("boom"),
			wantErr:     ErrorUnknown,
			wantMessage: "An unknown error has occurred. Please contact the IT team if your problem persists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError[bool](tt.err)
			if got.WasSuccessful() {
				t.Fatal("FromError 不应返回成功结果")
			}
			if got.Err != tt.wantErr {
				t.Errorf("错误类别 = %v, 期望 %v", got.Err, tt.wantErr)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("消息 = %q, 期望 %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFromError_包装后的哨兵错误仍可识别(t *testing.T) {
	wrapped := errors.Join(errors.New("update state"), constant.ErrConcurrency)
	got := FromError[int](wrapped)
	if got.Err != ErrorDatabaseConcurrency {
		t.Errorf("错误类别 = %v, 期望 ErrorDatabaseConcurrency", got.Err)
	}
}

func TestOk_成功结果携带负载(t *testing.T) {
	r := Ok(99)
	if !r.WasSuccessful() {
		t.Fatal("Ok 应返回成功结果")
	}
	if r.Value != 99 {
		t.Errorf("Value = %d, 期望 99", r.Value)
	}
	if r.Message != "" {
		t.Errorf("成功结果不应携带消息, 实际为 %q", r.Message)
	}
}

func TestFailure_构造函数类别正确(t *testing.T) {
	tests := []struct {
		name    string
		got     Result[bool]
		wantErr ServiceError
	}{
		{"NotFound", NotFound[bool]("x"), ErrorNotFound},
		{"Unauthorized", Unauthorized[bool]("x"), ErrorUnauthorized},
		{"Forbidden", Forbidden[bool]("x"), ErrorForbidden},
		{"Unprocessable", Unprocessable[bool]("x"), ErrorUnprocessable},
		{"Conflict", Conflict[bool]("x"), ErrorDataConflict},
		{"ConcurrencyConflict", ConcurrencyConflict[bool]("x"), ErrorDatabaseConcurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.WasSuccessful() {
				t.Fatal("失败结果不应判定为成功")
			}
			if tt.got.Err != tt.wantErr {
				t.Errorf("错误类别 = %v, 期望 %v", tt.got.Err, tt.wantErr)
			}
		})
	}
}
