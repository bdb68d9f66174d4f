// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"campus_chat_server/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUsername 按用户名查找用户
	FindByUsername(username string) (*model.UserInfo, error)
	// Exists 用户是否存在
	Exists(username string) (bool, error)
	// Create 创建用户
	Create(user *model.UserInfo) error
}

// FriendRequestRepository 好友申请数据访问接口
type FriendRequestRepository interface {
	// FindByUuid 按申请id查找
	FindByUuid(uuid string) (*model.FriendRequest, error)
	// FindPendingByReceiver 查找某用户收到的待处理申请
	FindPendingByReceiver(username string) ([]model.FriendRequest, error)
	// FindPendingBySender 查找某用户发出的待处理申请
	FindPendingBySender(username string) ([]model.FriendRequest, error)
	// Create 创建申请
	Create(request *model.FriendRequest) error
	// Update 更新申请（全字段）
	Update(request *model.FriendRequest) error
}

// FriendshipRepository 好友关系数据访问接口
type FriendshipRepository interface {
	// FindByUser 查找某用户参与的所有好友关系（两个方向）
	FindByUser(username string) ([]model.Friendship, error)
	// Create 创建好友关系
	Create(friendship *model.Friendship) error
	// DeleteByPair 删除一对用户之间的好友关系，方向无关，不存在时不报错
	DeleteByPair(userA, userB string) error
}

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	// FindByRoomId 按聊天室查找消息，按发送时间升序（同时间按主键升序）
	FindByRoomId(roomId int64) ([]model.Message, error)
	// Create 创建消息
	Create(message *model.Message) error
	// UpdateStatus 更新消息状态
	UpdateStatus(uuid int64, status int8) error
}
