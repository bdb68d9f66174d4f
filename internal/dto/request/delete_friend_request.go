package request

// DeleteFriendRequest 删除好友关系请求
// 使用位置:
//   - handler/friend_handler.go: DeleteFriendHandler
type DeleteFriendRequest struct {
	Username   string `json:"username" binding:"required"`
	FriendName string `json:"friend_name" binding:"required"`
}
