package repository

import (
	"campus_chat_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息 Repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindByRoomId 按聊天室查找消息
// 按发送时间升序返回，时间相同时按自增主键升序兜底
func (r *messageRepository) FindByRoomId(roomId int64) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Where("room_id = ?", roomId).Order("send_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询消息 room_id=%d", roomId)
	}
	return messages, nil
}

// Create 创建消息
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}

// UpdateStatus 更新消息状态
func (r *messageRepository) UpdateStatus(uuid int64, status int8) error {
	if err := r.db.Model(&model.Message{}).Where("uuid = ?", uuid).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新消息状态 uuid=%d", uuid)
	}
	return nil
}
