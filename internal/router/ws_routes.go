package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 路由
// 浏览器 WebSocket 握手无法携带自定义 Header，连接入口不走 JWT 中间件
// 请求示例: ws://host:port/ws?username=alice
func (rt *Router) RegisterWebSocketRoutes(r *gin.Engine) {
	r.GET("/ws", rt.handlers.Ws.WsLogin)
}
