package model

import (
	"gorm.io/gorm"
)

// Friendship 好友关系模型
// 对应数据库 friendship 表
// 无向边：User1/User2 的存储方向取决于当初是谁发起的申请，查询时两个方向都要匹配
type Friendship struct {
	gorm.Model
	Uuid  string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:关系id"`
	User1 string `gorm:"column:user_1;index;type:varchar(32);not null;comment:用户1(申请人)"`
	User2 string `gorm:"column:user_2;index;type:varchar(32);not null;comment:用户2(接收人)"`
}

func (Friendship) TableName() string {
	return "friendship"
}
