package router

import (
	"github.com/gin-gonic/gin"

	"campus_chat_server/internal/infrastructure/middleware"
)

// RegisterMessageRoutes 注册消息相关路由（需要认证）
func (rt *Router) RegisterMessageRoutes(r *gin.Engine) {
	messageGroup := r.Group("/message")
	messageGroup.Use(middleware.JWTAuth())
	{
		messageGroup.GET("/getMessageList", rt.handlers.Message.GetMessageList)
	}
}
