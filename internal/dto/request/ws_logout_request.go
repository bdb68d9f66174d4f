package request

// WsLogoutRequest 主动断开 WebSocket 连接请求
// 使用位置:
//   - handler/ws_handler.go: WsLogout
type WsLogoutRequest struct {
	Username string `json:"username" binding:"required"`
}
