package respond

// LoginRespond 登录响应
// 使用位置:
//   - service/user/service.go: Login
type LoginRespond struct {
	Username     string `json:"username"`
	AccountType  int8   `json:"account_type"`
	StaffType    string `json:"staff_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
