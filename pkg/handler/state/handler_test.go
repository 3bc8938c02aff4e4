package state_handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// fakeStateService 用函数字段驱动的服务桩，按测试用例定制行为。
type fakeStateService struct {
	addFn    func(ctx context.Context, model *dto.StateDTO) result.Result[uuid.UUID]
	editFn   func(ctx context.Context, model *dto.StateDTO) result.Result[bool]
	getFn    func(ctx context.Context, id uuid.UUID) result.Result[*dto.StateDTO]
	listFn   func(ctx context.Context, filter *repository.Filter) result.Result[dto.PagedResult[*dto.StateDTO]]
	deleteFn func(ctx context.Context, id uuid.UUID) result.Result[bool]
}

func (f *fakeStateService) Add(ctx context.Context, model *dto.StateDTO) result.Result[uuid.UUID] {
	return f.addFn(ctx, model)
}

func (f *fakeStateService) Edit(ctx context.Context, model *dto.StateDTO) result.Result[bool] {
	return f.editFn(ctx, model)
}

func (f *fakeStateService) Get(ctx context.Context, id uuid.UUID) result.Result[*dto.StateDTO] {
	return f.getFn(ctx, id)
}

func (f *fakeStateService) List(ctx context.Context, filter *repository.Filter) result.Result[dto.PagedResult[*dto.StateDTO]] {
	return f.listFn(ctx, filter)
}

func (f *fakeStateService) Delete(ctx context.Context, id uuid.UUID) result.Result[bool] {
	return f.deleteFn(ctx, id)
}

func newStateRouter(svc *fakeStateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStateHandler(svc)
	r := gin.New()
	r.GET("/api/states", h.List)
	r.GET("/api/states/:id", h.Get)
	r.POST("/api/states", h.Add)
	r.PUT("/api/states/:id", h.Edit)
	r.DELETE("/api/states/:id", h.Delete)
	return r
}

func TestStateHandler_List透传过滤器(t *testing.T) {
	var captured *repository.Filter
	svc := &fakeStateService{
		listFn: func(_ context.Context, filter *repository.Filter) result.Result[dto.PagedResult[*dto.StateDTO]] {
			captured = filter
			return result.Ok(dto.PagedResult[*dto.StateDTO]{Items: []*dto.StateDTO{}, TotalCount: 0})
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/states?searchTerm=ala&sortName=abbreviation&sortDescending=true&page=2&pageSize=5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}
	if captured == nil {
		t.Fatal("服务未被调用")
	}
	if captured.SearchTerm != "ala" || captured.SortName != "abbreviation" || !captured.SortDescending {
		t.Errorf("过滤器绑定不正确: %+v", captured)
	}
	if captured.Page != 2 || captured.PageSize != 5 {
		t.Errorf("分页参数绑定不正确: %+v", captured)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("空结果应序列化为空数组: %s", w.Body.String())
	}
}

func TestStateHandler_Get非法主键返回404(t *testing.T) {
	svc := &fakeStateService{
		getFn: func(_ context.Context, _ uuid.UUID) result.Result[*dto.StateDTO] {
			t.Fatal("非法主键不应触达服务层")
			return result.Ok[*dto.StateDTO](nil)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/states/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("状态码 = %d, 期望 404", w.Code)
	}
}

func TestStateHandler_Add返回生成的主键(t *testing.T) {
	id := uuid.New()
	svc := &fakeStateService{
		addFn: func(_ context.Context, model *dto.StateDTO) result.Result[uuid.UUID] {
			if model.Name != "Alabama" || model.Abbreviation != "AL" {
				t.Errorf("请求体绑定不正确: %+v", model)
			}
			return result.Ok(id)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/states", strings.NewReader(`{"name":"Alabama","abbreviation":"AL"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 响应体 %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), id.String()) {
		t.Errorf("响应体缺少主键: %s", w.Body.String())
	}
}

func TestStateHandler_Add请求体校验失败返回400(t *testing.T) {
	svc := &fakeStateService{
		addFn: func(_ context.Context, _ *dto.StateDTO) result.Result[uuid.UUID] {
			t.Fatal("非法请求体不应触达服务层")
			return result.Ok(uuid.Nil)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/states", strings.NewReader(`{"name":"Alabama","abbreviation":"ALA"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

func TestStateHandler_Edit路由主键覆盖请求体(t *testing.T) {
	routeID := uuid.New()
	bodyID := uuid.New()
	svc := &fakeStateService{
		editFn: func(_ context.Context, model *dto.StateDTO) result.Result[bool] {
			if model.ID != routeID {
				t.Errorf("主键 = %s, 期望路由里的 %s", model.ID, routeID)
			}
			return result.Ok(true)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	body := `{"id":"` + bodyID.String() + `","name":"Alaska","abbreviation":"AK"}`
	req := httptest.NewRequest(http.MethodPut, "/api/states/"+routeID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("状态码 = %d, 期望 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 响应不应有响应体: %s", w.Body.String())
	}
}

func TestStateHandler_Edit并发冲突返回409(t *testing.T) {
	svc := &fakeStateService{
		editFn: func(_ context.Context, _ *dto.StateDTO) result.Result[bool] {
			return result.Failure[bool](result.ErrorDatabaseConcurrency, constant.MsgConcurrencyConflict)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/states/"+uuid.NewString(), strings.NewReader(`{"name":"Alaska","abbreviation":"AK"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("状态码 = %d, 期望 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgConcurrencyConflict) {
		t.Errorf("响应体缺少冲突消息: %s", w.Body.String())
	}
}

func TestStateHandler_Delete成功返回204(t *testing.T) {
	svc := &fakeStateService{
		deleteFn: func(_ context.Context, _ uuid.UUID) result.Result[bool] {
			return result.Ok(true)
		},
	}
	r := newStateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/states/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("状态码 = %d, 期望 204", w.Code)
	}
}
