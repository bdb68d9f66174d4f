package friend_request_status_enum

// 好友申请状态
// 申请创建后处于 PENDING，只能流转一次到 ACCEPTED 或 REJECTED，之后不再变化
const (
	PENDING  int8 = iota // 申请中
	ACCEPTED             // 已同意
	REJECTED             // 已拒绝
)
