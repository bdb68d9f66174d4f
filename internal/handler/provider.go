// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"campus_chat_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	User    *UserHandler
	Auth    *AuthHandler
	Friend  *FriendHandler
	Room    *RoomHandler
	Message *MessageHandler
	Ws      *WsHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		User:    NewUserHandler(svc.User),
		Auth:    NewAuthHandler(svc.User),
		Friend:  NewFriendHandler(svc.Friend),
		Room:    NewRoomHandler(svc.Room),
		Message: NewMessageHandler(svc.Message),
		Ws:      NewWsHandler(),
	}
}
