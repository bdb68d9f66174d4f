// Package chat 实现聊天系统的核心服务层
// conn.go
// 核心职责：WebSocket 客户端连接的封装与读写协程
package chat

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WsConn 抽象底层 WebSocket 连接
// *websocket.Conn 满足此接口；测试中可注入替身
type WsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// MessageBack 待写出给前端的消息
// Uuid 非零时表示对应一条已落库的聊天消息，写出成功后标记为已发送
type MessageBack struct {
	Message []byte
	Uuid    int64
}

// UserConn 表示一个 WebSocket 客户端连接
type UserConn struct {
	Conn     WsConn
	Username string
	SendBack chan *MessageBack // 给前端

	// closed 标记 SendBack 已关闭，trySend 与 closeSend 之间用 mu 串行化
	mu     sync.Mutex
	closed bool
}

// trySend 非阻塞投递，连接已关闭或缓冲满时返回 false
func (c *UserConn) trySend(back *MessageBack) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.SendBack <- back:
		return true
	default:
		return false
	}
}

// closeSend 关闭发送通道，重复调用无操作
func (c *UserConn) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.SendBack)
	}
}

// Read 从 WebSocket 读取事件帧并交给协调器分发
// 读出错即视为连接断开：广播尽力而为的下线通知并注销连接
func (c *UserConn) Read() {
	zap.L().Info("ws read goroutine start", zap.String("username", c.Username))
	for {
		_, jsonMessage, err := c.Conn.ReadMessage()
		if err != nil {
			zap.L().Info("ws read end", zap.String("username", c.Username), zap.Error(err))
			GlobalCoordinator.Disconnect(c)
			GlobalHub.Unregister(c)
			return
		}
		GlobalCoordinator.Dispatch(c, jsonMessage)
	}
}

// Write 从 SendBack 通道读取消息并写出到 WebSocket
func (c *UserConn) Write() {
	zap.L().Info("ws write goroutine start", zap.String("username", c.Username))
	for messageBack := range c.SendBack {
		if err := c.Conn.WriteMessage(websocket.TextMessage, messageBack.Message); err != nil {
			zap.L().Error(err.Error())
			return
		}
		// 顺利写出，聊天消息修改状态为已发送
		if messageBack.Uuid != 0 {
			GlobalCoordinator.messages.MarkSent(messageBack.Uuid)
		}
	}
}
