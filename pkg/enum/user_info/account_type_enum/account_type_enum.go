package account_type_enum

// 账号类型
const (
	STUDENT int8 = iota // 学生
	STAFF               // 教职工
)
