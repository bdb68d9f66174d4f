package router

import (
	"github.com/gin-gonic/gin"

	"campus_chat_server/internal/infrastructure/middleware"
)

// RegisterRoomRoutes 注册聊天室相关路由（需要认证）
func (rt *Router) RegisterRoomRoutes(r *gin.Engine) {
	roomGroup := r.Group("/room")
	roomGroup.Use(middleware.JWTAuth())
	{
		roomGroup.GET("/getRoomId", rt.handlers.Room.GetRoomId)
	}
}
