package message_status_enum

// 消息状态
const (
	Unsent int8 = iota // 未发送
	Sent               // 已发送
)
