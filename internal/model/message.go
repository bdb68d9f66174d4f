package model

import (
	"time"

	"gorm.io/gorm"
)

// Message 消息模型
// 对应数据库 message 表
// 消息写入后不再修改（Status 除外），按 SendAt 升序回放，时间相同时按自增主键排序
type Message struct {
	gorm.Model

	// Uuid 消息唯一标识，雪花算法生成
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// RoomId 消息所属聊天室，由 RoomRegistry 分配
	RoomId int64 `gorm:"column:room_id;index;type:bigint;not null;comment:聊天室id"`

	// Sender / Receiver 发送者与接收者用户名
	Sender   string `gorm:"column:sender;index;type:varchar(32);not null;comment:发送者用户名"`
	Receiver string `gorm:"column:receiver;type:varchar(32);not null;comment:接收者用户名"`

	// Content 消息文本，作为不透明负载存储
	Content string `gorm:"column:content;type:TEXT;comment:消息内容"`

	// Status 消息状态，0.未发送，1.已发送
	Status int8 `gorm:"column:status;not null;comment:状态，0.未发送，1.已发送"`

	// SendAt 落库时分配的发送时间
	SendAt time.Time `gorm:"column:send_at;type:datetime;not null;comment:发送时间"`
}

func (Message) TableName() string {
	return "message"
}
