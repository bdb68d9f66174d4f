// Package mq 提供聊天消息的 Kafka 审计发布
// 仅在 kafkaConfig.messageMode 为 "kafka" 时启用
// 消息投递仍由单进程内的 Hub 负责，Kafka 只作为落库后的异步审计流
package mq

import (
	"context"
	"strconv"

	"campus_chat_server/internal/config"
	"campus_chat_server/pkg/constants"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ChatAuditProducer 聊天消息审计生产者
// Publish 是非阻塞的：通道满时丢弃并记录告警，不影响消息主链路
type ChatAuditProducer struct {
	writer *kafka.Writer
	events chan []byte
	done   chan struct{}
}

// NewChatAuditProducer 创建审计生产者
func NewChatAuditProducer(cfg *config.KafkaConfig) *ChatAuditProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.HostPort),
		Topic:        cfg.ChatTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: cfg.Timeout,
	}
	return &ChatAuditProducer{
		writer: writer,
		events: make(chan []byte, constants.CHANNEL_SIZE),
		done:   make(chan struct{}),
	}
}

// Start 启动发布循环
// 应在单独的 goroutine 中调用
func (p *ChatAuditProducer) Start() {
	partitionKey := []byte(strconv.Itoa(config.GetConfig().KafkaConfig.Partition))
	for {
		select {
		case payload, ok := <-p.events:
			if !ok {
				return
			}
			if err := p.writer.WriteMessages(context.Background(), kafka.Message{
				Key:   partitionKey,
				Value: payload,
			}); err != nil {
				zap.L().Error("kafka 审计消息发布失败", zap.Error(err))
			}
		case <-p.done:
			return
		}
	}
}

// Publish 提交一条审计消息，非阻塞
func (p *ChatAuditProducer) Publish(payload []byte) {
	select {
	case p.events <- payload:
	default:
		zap.L().Warn("kafka 审计通道已满，丢弃本条审计消息")
	}
}

// Close 关闭生产者
func (p *ChatAuditProducer) Close() {
	close(p.done)
	if err := p.writer.Close(); err != nil {
		zap.L().Error("kafka writer 关闭失败", zap.Error(err))
	}
}
