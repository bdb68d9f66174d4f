package request

// OwnlistRequest 按用户名查询列表类数据的通用请求
// 使用位置:
//   - handler/friend_handler.go: GetFriendListHandler / GetFriendApplyListHandler
type OwnlistRequest struct {
	Username string `form:"username" binding:"required"`
}
