// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 连接相关的 API 请求
package handler

import (
	"net/http"

	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/gateway/websocket"
	"campus_chat_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WsHandler WebSocket 接入处理器
type WsHandler struct{}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

// WsLogin 建立 WebSocket 连接
// GET /ws?username=xxx
// 将 HTTP 连接升级为 WebSocket 并接入在线连接管理
func (h *WsHandler) WsLogin(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		zap.L().Error("username获取失败")
		c.JSON(http.StatusOK, gin.H{
			"code": errorx.CodeInvalidParam,
			"msg":  "username获取失败",
		})
		return
	}
	websocket.NewClientInit(c, username)
}

// WsLogout 主动断开 WebSocket 连接
// POST /user/wsLogout
// 请求体: request.OwnlistRequest
func (h *WsHandler) WsLogout(c *gin.Context) {
	var req request.WsLogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := websocket.ClientLogout(req.Username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
