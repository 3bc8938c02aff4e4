// internal/app/middleware/auth.go
package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/response"
	service_auth "github.com/anzhiyu-c/qingyu-admin/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("[JWTAuth] JWT token解析失败: %v", err)
			response.Fail(c, http.StatusUnauthorized, constant.MsgNotLoggedIn)
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// AdminAuth 是一个管理员权限验证中间件，必须在 JWTAuth 之后使用。
func (m *Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusForbidden, constant.MsgNoPermission)
			c.Abort()
			return
		}

		claims, ok := claimsValue.(*auth.CustomClaims)
		if !ok || !claims.IsAdmin() {
			response.Fail(c, http.StatusForbidden, constant.MsgNoPermission)
			c.Abort()
			return
		}

		c.Next()
	}
}
