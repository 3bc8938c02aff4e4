/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2025-06-15 11:30:55
 * @LastEditTime: 2025-08-31 02:42:18
 * @LastEditors: 安知鱼
 */
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/internal/app/middleware"
	account_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/account"
	state_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/state"
	users_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/users"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	accountHandler *account_handler.AccountHandler
	stateHandler   *state_handler.StateHandler
	usersHandler   *users_handler.UsersHandler
	mw             *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	accountHandler *account_handler.AccountHandler,
	stateHandler *state_handler.StateHandler,
	usersHandler *users_handler.UsersHandler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		accountHandler: accountHandler,
		stateHandler:   stateHandler,
		usersHandler:   usersHandler,
		mw:             mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	apiGroup.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.registerAccountRoutes(apiGroup)
	r.registerStateRoutes(apiGroup)
	r.registerUserAdminRoutes(apiGroup)
}

// registerAccountRoutes 注册账户自助接口。
// 注册、登录与忘记密码是匿名接口，施加频率限制防止滥用。
func (r *Router) registerAccountRoutes(api *gin.RouterGroup) {
	account := api.Group("/account")
	{
		account.POST("", middleware.CustomRateLimit(10, 3), r.accountHandler.Register)
		account.POST("/login", middleware.CustomRateLimit(10, 5), r.accountHandler.Login)
		account.POST("/token/refresh", r.accountHandler.RefreshToken)
		account.POST("/confirm", r.accountHandler.ConfirmAccount)
		account.DELETE("/password", middleware.CustomRateLimit(5, 2), r.accountHandler.ForgotPassword)
		account.PATCH("/password", r.accountHandler.ResetPassword)
	}

	accountAuthed := api.Group("/account").Use(r.mw.JWTAuth())
	{
		accountAuthed.GET("/login", r.accountHandler.GetCurrentUser)
		accountAuthed.POST("/logout", r.accountHandler.Logout)
		accountAuthed.POST("/email", r.accountHandler.InitiateEmailChange)
		accountAuthed.PATCH("/email", r.accountHandler.PerformEmailChange)
		accountAuthed.POST("/password", r.accountHandler.ChangePassword)
		accountAuthed.GET("/data", r.accountHandler.GetPersonalData)
		accountAuthed.DELETE("", r.accountHandler.DeleteAccount)
	}
}

// registerStateRoutes 注册州参考数据接口，读接口公开，写接口仅限管理员。
func (r *Router) registerStateRoutes(api *gin.RouterGroup) {
	statesPublic := api.Group("/states")
	{
		statesPublic.GET("", r.stateHandler.List)
		statesPublic.GET("/:id", r.stateHandler.Get)
	}

	statesAdmin := api.Group("/states").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		statesAdmin.POST("", r.stateHandler.Add)
		statesAdmin.PUT("/:id", r.stateHandler.Edit)
		statesAdmin.DELETE("/:id", r.stateHandler.Delete)
	}
}

// registerUserAdminRoutes 注册用户管理接口，全部仅限管理员。
func (r *Router) registerUserAdminRoutes(api *gin.RouterGroup) {
	users := api.Group("/users").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		users.GET("", r.usersHandler.List)
		users.GET("/roles", r.usersHandler.GetRoles)
		users.PUT("/roles", r.usersHandler.UpdateRoles)
		users.PATCH("/email", r.usersHandler.UpdateEmail)
		users.PATCH("/password", r.usersHandler.UpdatePassword)
		users.GET("/:id", r.usersHandler.Get)
	}
}
