package repository

import (
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/enum/friend_request/friend_request_status_enum"

	"gorm.io/gorm"
)

type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository 创建好友申请 Repository
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

// FindByUuid 按申请id查找
func (r *friendRequestRepository) FindByUuid(uuid string) (*model.FriendRequest, error) {
	var request model.FriendRequest
	if err := r.db.First(&request, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友申请 uuid=%s", uuid)
	}
	return &request, nil
}

// FindPendingByReceiver 查找某用户收到的待处理申请
func (r *friendRequestRepository) FindPendingByReceiver(username string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest
	if err := r.db.Where("receiver = ? AND status = ?", username, friend_request_status_enum.PENDING).Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收到的好友申请 receiver=%s", username)
	}
	return requests, nil
}

// FindPendingBySender 查找某用户发出的待处理申请
func (r *friendRequestRepository) FindPendingBySender(username string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest
	if err := r.db.Where("sender = ? AND status = ?", username, friend_request_status_enum.PENDING).Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询发出的好友申请 sender=%s", username)
	}
	return requests, nil
}

// Create 创建申请
func (r *friendRequestRepository) Create(request *model.FriendRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "创建好友申请")
	}
	return nil
}

// Update 更新申请（全字段）
func (r *friendRequestRepository) Update(request *model.FriendRequest) error {
	if err := r.db.Save(request).Error; err != nil {
		return wrapDBError(err, "更新好友申请")
	}
	return nil
}
