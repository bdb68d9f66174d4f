package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - handler/user_handler.go: RegisterHandler
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=2,max=32"`
	Password    string `json:"password" binding:"required,min=6"`
	AccountType int8   `json:"account_type"`
	StaffType   string `json:"staff_type"`
}
