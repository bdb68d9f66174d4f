// Package handler 提供 HTTP 请求处理器
// 本文件处理历史消息相关的 API 请求
package handler

import (
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler 消息请求处理器
type MessageHandler struct {
	messageSvc service.MessageService
}

// NewMessageHandler 创建消息处理器实例
func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// GetMessageList 获取聊天室历史消息
// GET /message/getMessageList?roomId=xxx
// 响应: []respond.MessageListRespond，最旧的在前
func (h *MessageHandler) GetMessageList(c *gin.Context) {
	var req request.MessageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.messageSvc.GetMessageList(req.RoomId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
