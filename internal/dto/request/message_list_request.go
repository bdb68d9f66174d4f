package request

// MessageListRequest 查询聊天室历史消息请求
// 使用位置:
//   - handler/message_handler.go: GetMessageListHandler
type MessageListRequest struct {
	RoomId int64 `form:"roomId" binding:"required"`
}
