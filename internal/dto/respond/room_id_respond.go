package respond

// RoomIdRespond 聊天室id响应
// 使用位置:
//   - handler/room_handler.go: GetRoomIdHandler
type RoomIdRespond struct {
	RoomId int64 `json:"room_id"`
}
