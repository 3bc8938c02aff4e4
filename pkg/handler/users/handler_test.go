package users_handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

// fakeUserAdminService 用函数字段驱动的服务桩，未定制的方法返回成功。
type fakeUserAdminService struct {
	getAllUsersFn     func(ctx context.Context, filter *repository.Filter) result.Result[*dto.PagedResult[*dto.UserDTO]]
	getUserDataFn     func(ctx context.Context, publicID string) result.Result[*dto.UserDTO]
	updateUserRolesFn func(ctx context.Context, req *dto.UserUpdateRolesDTO) result.Result[bool]
}

func (f *fakeUserAdminService) GetAllUsers(ctx context.Context, filter *repository.Filter) result.Result[*dto.PagedResult[*dto.UserDTO]] {
	if f.getAllUsersFn != nil {
		return f.getAllUsersFn(ctx, filter)
	}
	return result.Ok(&dto.PagedResult[*dto.UserDTO]{Items: []*dto.UserDTO{}, TotalCount: 0})
}

func (f *fakeUserAdminService) GetUserData(ctx context.Context, publicID string) result.Result[*dto.UserDTO] {
	if f.getUserDataFn != nil {
		return f.getUserDataFn(ctx, publicID)
	}
	return result.Ok(&dto.UserDTO{ID: publicID, Username: "alice", Email: "alice@example.com", Roles: []string{model.RoleUser}})
}

func (f *fakeUserAdminService) UpdateUserEmail(ctx context.Context, req *dto.UserChangeEmailDTO) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeUserAdminService) UpdateUserPassword(ctx context.Context, req *dto.UserChangePasswordDTO) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeUserAdminService) GetAvailableRoles(ctx context.Context) result.Result[[]string] {
	return result.Ok([]string{model.RoleAdmin, model.RoleUser})
}

func (f *fakeUserAdminService) UpdateUserRoles(ctx context.Context, req *dto.UserUpdateRolesDTO) result.Result[bool] {
	if f.updateUserRolesFn != nil {
		return f.updateUserRolesFn(ctx, req)
	}
	return result.Ok(true)
}

func newUsersRouter(svc *fakeUserAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUsersHandler(svc)
	r := gin.New()
	r.GET("/api/users", h.List)
	r.GET("/api/users/roles", h.GetRoles)
	r.PUT("/api/users/roles", h.UpdateRoles)
	r.PATCH("/api/users/email", h.UpdateEmail)
	r.PATCH("/api/users/password", h.UpdatePassword)
	r.GET("/api/users/:id", h.Get)
	return r
}

func TestUsersHandler_列表透传查询过滤器(t *testing.T) {
	var captured *repository.Filter
	svc := &fakeUserAdminService{
		getAllUsersFn: func(_ context.Context, filter *repository.Filter) result.Result[*dto.PagedResult[*dto.UserDTO]] {
			captured = filter
			return result.Ok(&dto.PagedResult[*dto.UserDTO]{Items: []*dto.UserDTO{}, TotalCount: 0})
		},
	}
	r := newUsersRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users?searchTerm=ali&sortName=email&page=3&pageSize=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 响应体 %s", w.Code, w.Body.String())
	}
	if captured == nil {
		t.Fatal("过滤器未到达服务层")
	}
	if captured.SearchTerm != "ali" || captured.SortName != "email" || captured.Page != 3 || captured.PageSize != 10 {
		t.Errorf("过滤器 = %+v", captured)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("空列表应序列化为空数组: %s", w.Body.String())
	}
}

func TestUsersHandler_按公共ID获取用户(t *testing.T) {
	r := newUsersRouter(&fakeUserAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/Uabc123", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":"Uabc123"`) {
		t.Errorf("响应体缺少用户ID: %s", w.Body.String())
	}
}

func TestUsersHandler_获取用户不存在返回404(t *testing.T) {
	svc := &fakeUserAdminService{
		getUserDataFn: func(_ context.Context, _ string) result.Result[*dto.UserDTO] {
			return result.Failure[*dto.UserDTO](result.ErrorNotFound, constant.MsgNotFound)
		},
	}
	r := newUsersRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/nonexistent", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("状态码 = %d, 期望 404", w.Code)
	}
}

func TestUsersHandler_角色列表(t *testing.T) {
	r := newUsersRouter(&fakeUserAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/roles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), model.RoleAdmin) || !strings.Contains(w.Body.String(), model.RoleUser) {
		t.Errorf("响应体缺少内置角色: %s", w.Body.String())
	}
}

func TestUsersHandler_替换角色成功返回204(t *testing.T) {
	var captured *dto.UserUpdateRolesDTO
	svc := &fakeUserAdminService{
		updateUserRolesFn: func(_ context.Context, req *dto.UserUpdateRolesDTO) result.Result[bool] {
			captured = req
			return result.Ok(true)
		},
	}
	r := newUsersRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/roles", strings.NewReader(`{"userId":"Uabc123","roles":["Admin"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("状态码 = %d, 响应体 %s", w.Code, w.Body.String())
	}
	if captured == nil || captured.UserID != "Uabc123" || len(captured.Roles) != 1 || captured.Roles[0] != "Admin" {
		t.Errorf("请求体 = %+v", captured)
	}
}

func TestUsersHandler_改邮箱缺少用户ID返回400(t *testing.T) {
	r := newUsersRouter(&fakeUserAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/email", strings.NewReader(`{"email":"new@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

func TestUsersHandler_改密码两次输入不一致返回400(t *testing.T) {
	r := newUsersRouter(&fakeUserAdminService{})

	body := `{"userId":"Uabc123","newPassword":"Sup3r$ecret","confirmNewPassword":"different"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}
