package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// 只对 API 路由应用 CORS 头部
		if strings.HasPrefix(path, "/api/") {
			origin := c.Request.Header.Get("Origin")

			// 可以设置为 * 允许所有，或限制域名 origin
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			// Content-Disposition 需要暴露给前端，个人数据导出是附件下载
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-CSRF-Token, X-Requested-With")
			c.Header("Access-Control-Expose-Headers", "Authorization, Content-Length, Content-Disposition")
			c.Header("Access-Control-Allow-Credentials", "true")

			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}

		c.Next()
	}
}
