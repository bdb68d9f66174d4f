// Package handler 提供 HTTP 请求处理器
// 本文件处理聊天室相关的 API 请求
package handler

import (
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler 聊天室请求处理器
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler 创建聊天室处理器实例
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// GetRoomId 查询两个用户之间的聊天室id
// GET /room/getRoomId?userA=xxx&userB=yyy
// 两个用户名不区分顺序；聊天室不存在时返回 CodeRoomNotFound
func (h *RoomHandler) GetRoomId(c *gin.Context) {
	var req request.RoomIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	roomId, err := h.roomSvc.GetRoomId(req.UserA, req.UserB)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.RoomIdRespond{RoomId: roomId})
}
