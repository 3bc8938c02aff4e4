package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

func TestStatus_错误类别到状态码(t *testing.T) {
	tests := []struct {
		name string
		err  result.ServiceError
		want int
	}{
		{"成功", result.ErrorNone, http.StatusOK},
		{"未找到", result.ErrorNotFound, http.StatusNotFound},
		{"未认证", result.ErrorUnauthorized, http.StatusUnauthorized},
		{"无权限", result.ErrorForbidden, http.StatusForbidden},
		{"数据无法处理", result.ErrorUnprocessable, http.StatusUnprocessableEntity},
		{"数据冲突", result.ErrorDataConflict, http.StatusConflict},
		{"并发冲突", result.ErrorDatabaseConcurrency, http.StatusConflict},
		{"未知错误", result.ErrorUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status(%v) = %d, 期望 %d", tt.err, got, tt.want)
			}
		})
	}
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestFromResult_成功时写入负载(t *testing.T) {
	c, w := newTestContext()

	FromResult(c, result.Ok("payload"), http.StatusOK)

	if w.Code != http.StatusOK {
		t.Errorf("状态码 = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"payload"`) {
		t.Errorf("响应体缺少负载: %s", w.Body.String())
	}
}

func TestFromResult_成功时204不写响应体(t *testing.T) {
	c, w := newTestContext()

	FromResultNoContent(c, result.Ok(true))
	// gin 的 ResponseWriter 延迟写入状态码，测试上下文外没有引擎
	// 帮忙冲刷，这里手动触发以便 recorder 能观察到。
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Errorf("状态码 = %d, 期望 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 响应不应有响应体: %s", w.Body.String())
	}
}

func TestFromResult_失败时透传消息(t *testing.T) {
	c, w := newTestContext()

	FromResult(c, result.Conflict[bool](constant.MsgStateDuplicateName), http.StatusOK)

	if w.Code != http.StatusConflict {
		t.Errorf("状态码 = %d, 期望 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgStateDuplicateName) {
		t.Errorf("响应体缺少业务消息: %s", w.Body.String())
	}
}

func TestFromResult_消息为空时使用兜底文案(t *testing.T) {
	c, w := newTestContext()

	FromResult(c, result.Failure[bool](result.ErrorDatabaseConcurrency, ""), http.StatusOK)

	if w.Code != http.StatusConflict {
		t.Errorf("状态码 = %d, 期望 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgConcurrencyConflict) {
		t.Errorf("响应体缺少兜底文案: %s", w.Body.String())
	}
}
