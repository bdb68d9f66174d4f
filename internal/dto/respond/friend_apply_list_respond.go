package respond

// FriendApplyRespond 单条待处理好友申请
type FriendApplyRespond struct {
	RequestId string `json:"request_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
}

// FriendApplyListRespond 待处理好友申请列表响应
// Received 为收到的申请，Sent 为发出的申请，均只含 PENDING 状态
// 使用位置:
//   - service/friend/service.go: GetFriendApplyList
type FriendApplyListRespond struct {
	Received []FriendApplyRespond `json:"received"`
	Sent     []FriendApplyRespond `json:"sent"`
}
