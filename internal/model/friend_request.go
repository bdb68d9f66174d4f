package model

import (
	"gorm.io/gorm"
)

// FriendRequest 好友申请模型
// 对应数据库 friend_request 表
// 同一对用户之间允许存在多条申请记录，历史记录保留用于审计
type FriendRequest struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:申请id"`
	Sender   string `gorm:"column:sender;index;type:varchar(32);not null;comment:申请人用户名"`
	Receiver string `gorm:"column:receiver;index;type:varchar(32);not null;comment:接收人用户名"`
	Status   int8   `gorm:"column:status;not null;comment:申请状态，0.申请中，1.已同意，2.已拒绝"`
}

func (FriendRequest) TableName() string {
	return "friend_request"
}
