package request

// HandleFriendApplyRequest 处理好友申请请求（通过/拒绝共用）
// 使用位置:
//   - handler/friend_handler.go: PassFriendApplyHandler / RefuseFriendApplyHandler
type HandleFriendApplyRequest struct {
	RequestId string `json:"request_id" binding:"required"`
}
