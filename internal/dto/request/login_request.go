package request

// LoginRequest 密码登录请求
// 使用位置:
//   - handler/user_handler.go: LoginHandler
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
