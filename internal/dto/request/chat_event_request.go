package request

// ChatEventRequest 聊天事件请求 (WebSocket 入站帧)
// Event 为判别字段: connect / join / leave / send
// 使用位置:
//   - gateway/websocket: Read
//   - service/chat/coordinator.go: Dispatch
type ChatEventRequest struct {
	Event    string `json:"event" binding:"required"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
	RoomId   int64  `json:"room_id"`
}
