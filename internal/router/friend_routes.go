package router

import (
	"github.com/gin-gonic/gin"

	"campus_chat_server/internal/infrastructure/middleware"
)

// RegisterFriendRoutes 注册好友相关路由（需要认证）
func (rt *Router) RegisterFriendRoutes(r *gin.Engine) {
	friendGroup := r.Group("/friend")
	friendGroup.Use(middleware.JWTAuth())
	{
		friendGroup.POST("/apply", rt.handlers.Friend.Apply)
		friendGroup.POST("/passApply", rt.handlers.Friend.PassApply)
		friendGroup.POST("/refuseApply", rt.handlers.Friend.RefuseApply)
		friendGroup.POST("/delete", rt.handlers.Friend.Delete)
		friendGroup.GET("/list", rt.handlers.Friend.GetFriendList)
		friendGroup.GET("/applyList", rt.handlers.Friend.GetFriendApplyList)
	}
}
