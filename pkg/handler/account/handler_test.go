package account_handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/dto"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/result"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeAccountService 用函数字段驱动的服务桩，未定制的方法返回成功。
type fakeAccountService struct {
	registerFn        func(ctx context.Context, req *dto.RegisterRequest) result.Result[bool]
	loginFn           func(ctx context.Context, req *dto.LoginRequest) result.Result[*dto.TokenResponse]
	getPersonalDataFn func(ctx context.Context, userID uint) result.Result[[]byte]
	deleteAccountFn   func(ctx context.Context, userID uint) result.Result[bool]
}

func (f *fakeAccountService) Register(ctx context.Context, req *dto.RegisterRequest) result.Result[bool] {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return result.Ok(true)
}

func (f *fakeAccountService) Login(ctx context.Context, req *dto.LoginRequest) result.Result[*dto.TokenResponse] {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return result.Ok(&dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh"})
}

func (f *fakeAccountService) Logout() error {
	return constant.ErrInvalidOperation
}

func (f *fakeAccountService) GetUserInfo(ctx context.Context, userID uint) result.Result[*dto.UserDTO] {
	publicID, _ := idgen.GeneratePublicID(userID, idgen.EntityTypeUser)
	return result.Ok(&dto.UserDTO{ID: publicID, Username: "alice", Roles: []string{model.RoleUser}})
}

func (f *fakeAccountService) ConfirmAccount(ctx context.Context, req *dto.ConfirmAccountRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) InitiateEmailChange(ctx context.Context, userID uint, req *dto.InitiateEmailChangeRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) PerformEmailChange(ctx context.Context, userID uint, req *dto.PerformEmailChangeRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) result.Result[bool] {
	return result.Ok(true)
}

func (f *fakeAccountService) GetPersonalData(ctx context.Context, userID uint) result.Result[[]byte] {
	if f.getPersonalDataFn != nil {
		return f.getPersonalDataFn(ctx, userID)
	}
	return result.Ok([]byte(`{"UserName":"alice"}`))
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, userID uint) result.Result[bool] {
	if f.deleteAccountFn != nil {
		return f.deleteAccountFn(ctx, userID)
	}
	return result.Ok(true)
}

// withClaims 模拟 JWT 中间件向上下文注入的用户身份。
func withClaims(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		publicID, err := idgen.GeneratePublicID(userID, idgen.EntityTypeUser)
		if err != nil {
			panic(err)
		}
		c.Set(auth.ClaimsKey, &auth.CustomClaims{UserID: publicID, Roles: []string{model.RoleUser}})
		c.Next()
	}
}

func newAccountRouter(svc *fakeAccountService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAccountHandler(svc, nil)
	r := gin.New()
	r.POST("/api/account", h.Register)
	r.POST("/api/account/login", h.Login)
	r.DELETE("/api/account/password", h.ForgotPassword)

	authed := r.Group("/api/account", withClaims(userID))
	authed.GET("/login", h.GetCurrentUser)
	authed.POST("/logout", h.Logout)
	authed.GET("/data", h.GetPersonalData)
	authed.DELETE("", h.DeleteAccount)
	return r
}

func TestAccountHandler_注册成功返回204(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 1)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3r$ecret","confirmPassword":"Sup3r$ecret","acceptTos":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("状态码 = %d, 期望 204, 响应体 %s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 响应不应有响应体: %s", w.Body.String())
	}
}

func TestAccountHandler_注册两次密码不一致返回400(t *testing.T) {
	svc := &fakeAccountService{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) result.Result[bool] {
			t.Fatal("非法请求体不应触达服务层")
			return result.Ok(true)
		},
	}
	r := newAccountRouter(svc, 1)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3r$ecret","confirmPassword":"different","acceptTos":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

func TestAccountHandler_登录返回会话令牌(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(`{"accountName":"alice","password":"Sup3r$ecret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 响应体 %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"accessToken":"access"`) {
		t.Errorf("响应体缺少访问令牌: %s", w.Body.String())
	}
}

func TestAccountHandler_登录失败映射到业务状态码(t *testing.T) {
	svc := &fakeAccountService{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) result.Result[*dto.TokenResponse] {
			return result.Failure[*dto.TokenResponse](result.ErrorUnauthorized, constant.MsgLoginFailedInvalid)
		},
	}
	r := newAccountRouter(svc, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(`{"accountName":"alice","password":"wrong-password"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, 期望 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgLoginFailedInvalid) {
		t.Errorf("响应体缺少登录失败消息: %s", w.Body.String())
	}
}

func TestAccountHandler_忘记密码返回202(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/account/password", strings.NewReader(`{"accountName":"nobody"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("状态码 = %d, 期望 202", w.Code)
	}
}

func TestAccountHandler_登出在无状态API上返回500(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/account/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("状态码 = %d, 期望 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgUnknown) {
		t.Errorf("响应体缺少通用错误消息: %s", w.Body.String())
	}
}

func TestAccountHandler_获取当前用户(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 42)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/account/login", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 响应体 %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"username":"alice"`) {
		t.Errorf("响应体缺少用户信息: %s", w.Body.String())
	}
}

func TestAccountHandler_未注入身份返回401(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAccountHandler(&fakeAccountService{}, nil)
	r := gin.New()
	r.GET("/api/account/login", h.GetCurrentUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/account/login", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, 期望 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), constant.MsgNotLoggedIn) {
		t.Errorf("响应体缺少未登录消息: %s", w.Body.String())
	}
}

func TestAccountHandler_个人数据以附件下载(t *testing.T) {
	r := newAccountRouter(&fakeAccountService{}, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/account/data", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="PersonalData.json"`) {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if w.Body.String() != `{"UserName":"alice"}` {
		t.Errorf("响应体 = %s", w.Body.String())
	}
}

func TestAccountHandler_注销账户失败透传消息(t *testing.T) {
	svc := &fakeAccountService{
		deleteAccountFn: func(_ context.Context, _ uint) result.Result[bool] {
			return result.Failure[bool](result.ErrorUnprocessable, constant.MsgUnprocessable)
		},
	}
	r := newAccountRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/account", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("状态码 = %d, 期望 422", w.Code)
	}
}
