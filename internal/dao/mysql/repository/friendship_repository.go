package repository

import (
	"campus_chat_server/internal/model"

	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建好友关系 Repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// FindByUser 查找某用户参与的所有好友关系
// 该用户可能出现在 user_1 或 user_2 任意一侧
func (r *friendshipRepository) FindByUser(username string) ([]model.Friendship, error) {
	var friendships []model.Friendship
	if err := r.db.Where("user_1 = ? OR user_2 = ?", username, username).Find(&friendships).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友关系 username=%s", username)
	}
	return friendships, nil
}

// Create 创建好友关系
func (r *friendshipRepository) Create(friendship *model.Friendship) error {
	if err := r.db.Create(friendship).Error; err != nil {
		return wrapDBError(err, "创建好友关系")
	}
	return nil
}

// DeleteByPair 删除一对用户之间的好友关系
// 两个存储方向都会被删除，不存在时静默成功
func (r *friendshipRepository) DeleteByPair(userA, userB string) error {
	if err := r.db.Where("(user_1 = ? AND user_2 = ?) OR (user_1 = ? AND user_2 = ?)",
		userA, userB, userB, userA).Delete(&model.Friendship{}).Error; err != nil {
		return wrapDBErrorf(err, "删除好友关系 %s-%s", userA, userB)
	}
	return nil
}
