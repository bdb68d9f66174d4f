package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证相关路由（均为公开接口）
func (rt *Router) RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/register", rt.handlers.User.Register)
	r.POST("/login", rt.handlers.User.Login)
	r.POST("/auth/refresh", rt.handlers.Auth.RefreshToken)
}
