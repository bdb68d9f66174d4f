package respond

// RegisterRespond 注册响应
// 使用位置:
//   - service/user/service.go: Register
type RegisterRespond struct {
	Username    string `json:"username"`
	AccountType int8   `json:"account_type"`
}
