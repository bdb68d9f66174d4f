package router

import (
	"github.com/gin-gonic/gin"

	"campus_chat_server/internal/infrastructure/middleware"
)

// RegisterUserRoutes 注册用户相关路由（需要认证）
func (rt *Router) RegisterUserRoutes(r *gin.Engine) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.GET("/exists", rt.handlers.User.Exists)
		userGroup.POST("/wsLogout", rt.handlers.Ws.WsLogout)
	}
}
