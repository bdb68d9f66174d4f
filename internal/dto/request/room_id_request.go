package request

// RoomIdRequest 查询聊天室id请求
// 两个用户名不区分顺序
// 使用位置:
//   - handler/room_handler.go: GetRoomIdHandler
type RoomIdRequest struct {
	UserA string `form:"userA" binding:"required"`
	UserB string `form:"userB" binding:"required"`
}
