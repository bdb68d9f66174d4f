// Package message 实现消息日志业务逻辑
// 消息只追加不修改，回放时按落库分配的发送时间升序返回
package message

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"campus_chat_server/internal/dao/mysql/repository"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/enum/message/message_status_enum"
	"campus_chat_server/pkg/errorx"
	"campus_chat_server/pkg/util/snowflake"
)

// AuditPublisher 审计发布接口，由 mq.ChatAuditProducer 实现
// 为 nil 时跳过审计发布
type AuditPublisher interface {
	Publish(payload []byte)
}

// messageService 消息业务逻辑实现
type messageService struct {
	repos *repository.Repositories
	audit AuditPublisher
}

// NewMessageService 构造函数
// audit 可为 nil（channel 模式下不发布审计流）
func NewMessageService(repos *repository.Repositories, audit AuditPublisher) *messageService {
	return &messageService{repos: repos, audit: audit}
}

// Append 追加一条消息
// 发送时间在落库时分配；落库失败时该消息不得被上报为已投递
// 落库成功后异步发布到审计流（尽力而为）
func (s *messageService) Append(sender, receiver string, roomId int64, content string) (*model.Message, error) {
	msg := &model.Message{
		Uuid:     snowflake.GenerateID(),
		RoomId:   roomId,
		Sender:   sender,
		Receiver: receiver,
		Content:  content,
		Status:   message_status_enum.Unsent,
		SendAt:   time.Now(),
	}

	if err := s.repos.Message.Create(msg); err != nil {
		zap.L().Error("消息落库失败", zap.Error(err), zap.Int64("roomId", roomId))
		return nil, err
	}

	if s.audit != nil {
		if payload, err := json.Marshal(msg); err == nil {
			s.audit.Publish(payload)
		}
	}

	return msg, nil
}

// Replay 按聊天室回放全部历史消息，最旧的在前
// 全量回放在每次加入时都是 O(n)，当前规模可接受
func (s *messageService) Replay(roomId int64) ([]model.Message, error) {
	messages, err := s.repos.Message.FindByRoomId(roomId)
	if err != nil {
		zap.L().Error("回放消息失败", zap.Error(err), zap.Int64("roomId", roomId))
		return nil, errorx.ErrServerBusy
	}
	return messages, nil
}

// GetMessageList 获取聊天室历史消息（HTTP 接口用）
func (s *messageService) GetMessageList(roomId int64) ([]respond.MessageListRespond, error) {
	messages, err := s.Replay(roomId)
	if err != nil {
		return nil, err
	}

	rsp := make([]respond.MessageListRespond, 0, len(messages))
	for _, msg := range messages {
		rsp = append(rsp, respond.MessageListRespond{
			Sender:  msg.Sender,
			Content: msg.Content,
			SendAt:  msg.SendAt.Format(time.DateTime),
		})
	}
	return rsp, nil
}

// MarkSent 将消息标记为已发送
// 由写协程在 WebSocket 写出成功后调用
func (s *messageService) MarkSent(uuid int64) {
	if err := s.repos.Message.UpdateStatus(uuid, message_status_enum.Sent); err != nil {
		zap.L().Error("更新消息状态失败", zap.Error(err), zap.Int64("uuid", uuid))
	}
}
