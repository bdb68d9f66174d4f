package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db            *gorm.DB
	User          UserRepository
	FriendRequest FriendRequestRepository
	Friendship    FriendshipRepository
	Message       MessageRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		FriendRequest: NewFriendRequestRepository(db),
		Friendship:    NewFriendshipRepository(db),
		Message:       NewMessageRepository(db),
	}
}

// NewRepositoriesWith 以显式注入的 Repository 实例构造聚合
// 主要供测试注入内存替身使用
func NewRepositoriesWith(user UserRepository, friendRequest FriendRequestRepository, friendship FriendshipRepository, message MessageRepository) *Repositories {
	return &Repositories{
		User:          user,
		FriendRequest: friendRequest,
		Friendship:    friendship,
		Message:       message,
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// db 为 nil 时（测试替身）直接执行，无事务语义
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
