package respond

// 聊天事件出站帧的事件类型
// 对应出站广播的四种变体
const (
	EventJoined = "joined" // 有用户加入聊天室
	EventLeft   = "left"   // 有用户离开聊天室
	EventChat   = "chat"   // 聊天消息
	EventSystem = "system" // 系统通知（连接/断开等尽力而为的提示）
)

// ChatEventRespond 聊天事件出站帧 (WebSocket)
// Color 为前端展示的颜色提示，green 表示加入/上线，red 表示离开/下线
// 使用位置:
//   - service/chat/hub.go: Broadcast / SendTo
type ChatEventRespond struct {
	Event   string `json:"event"`
	RoomId  int64  `json:"room_id,omitempty"`
	Sender  string `json:"sender,omitempty"`
	Content string `json:"content"`
	Color   string `json:"color,omitempty"`
}
