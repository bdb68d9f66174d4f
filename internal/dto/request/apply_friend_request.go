package request

// ApplyFriendRequest 发送好友申请请求
// 使用位置:
//   - handler/friend_handler.go: ApplyFriendHandler
type ApplyFriendRequest struct {
	Sender   string `json:"sender" binding:"required"`
	Receiver string `json:"receiver" binding:"required"`
}
