package service

import (
	"campus_chat_server/internal/dao/mysql/repository"
	"campus_chat_server/internal/service/friend"
	"campus_chat_server/internal/service/message"
	"campus_chat_server/internal/service/room"
	"campus_chat_server/internal/service/user"
)

// Services 聚合所有 Service 实例
type Services struct {
	User    UserService
	Friend  FriendService
	Message MessageService
	Room    RoomService
}

// Svc 全局 Service 实例集合，由 InitServices 初始化
var Svc *Services

// InitServices 初始化 Service 层（依赖注入）
// audit 为聊天消息审计发布器，channel 模式下传 nil
func InitServices(repos *repository.Repositories, audit message.AuditPublisher) {
	Svc = &Services{
		User:    user.NewUserService(repos),
		Friend:  friend.NewFriendService(repos),
		Message: message.NewMessageService(repos, audit),
		Room:    room.NewRegistry(),
	}
}
