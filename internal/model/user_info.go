package model

import (
	"gorm.io/gorm"
)

// UserInfo 用户模型
// 对应数据库 user_info 表
// Username 是对外的用户标识，创建后不可变
type UserInfo struct {
	gorm.Model
	Username    string `gorm:"column:username;uniqueIndex;type:varchar(32);not null;comment:用户名"`
	Password    string `gorm:"column:password;type:varchar(255);not null;comment:密码(bcrypt)"`
	AccountType int8   `gorm:"column:account_type;not null;comment:账号类型，0.学生，1.教职工"`
	StaffType   string `gorm:"column:staff_type;type:varchar(20);comment:教职工类别，Academic/Administrative/Admin，学生为空"`
}

func (UserInfo) TableName() string {
	return "user_info"
}
