package respond

// MessageListRespond 历史消息响应
// 使用位置:
//   - service/message/service.go: GetMessageList
type MessageListRespond struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	SendAt  string `json:"send_at"`
}
