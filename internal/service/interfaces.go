// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层和聊天协调器调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/model"
)

// UserService 用户业务接口
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 刷新 Access Token
	RefreshToken(refreshToken string) (string, error)
	// Exists 用户是否存在
	Exists(username string) (bool, error)
}

// FriendService 好友业务接口
// 好友申请的状态机：PENDING 只能流转一次到 ACCEPTED 或 REJECTED
type FriendService interface {
	// ApplyFriend 发送好友申请，返回申请id
	ApplyFriend(req request.ApplyFriendRequest) (string, error)
	// PassFriendApply 通过好友申请并建立好友关系；已处理的申请静默跳过
	PassFriendApply(requestId string) error
	// RefuseFriendApply 拒绝好友申请；已处理的申请静默跳过
	RefuseFriendApply(requestId string) error
	// GetFriendList 获取好友用户名列表
	GetFriendList(username string) ([]string, error)
	// GetFriendApplyList 获取待处理申请（收到/发出两组）
	GetFriendApplyList(username string) (*respond.FriendApplyListRespond, error)
	// DeleteFriend 删除好友关系，方向无关
	DeleteFriend(username, friendName string) error
}

// MessageService 消息业务接口
type MessageService interface {
	// Append 追加一条消息，落库时分配发送时间
	Append(sender, receiver string, roomId int64, content string) (*model.Message, error)
	// Replay 按聊天室回放全部历史消息，最旧的在前
	Replay(roomId int64) ([]model.Message, error)
	// GetMessageList 获取聊天室历史消息（HTTP 接口用）
	GetMessageList(roomId int64) ([]respond.MessageListRespond, error)
	// MarkSent 将消息标记为已发送
	MarkSent(uuid int64)
}

// RoomService 聊天室注册表接口
// 两个用户名不区分顺序
type RoomService interface {
	// GetOrCreateRoom 返回聊天室id，不存在时原子地分配新id
	GetOrCreateRoom(userA, userB string) int64
	// GetRoomId 只读查询，聊天室不存在时返回 ErrRoomNotFound
	GetRoomId(userA, userB string) (int64, error)
}
