// Package chat 实现聊天系统的核心服务层
// hub.go
// 核心职责：
// 1. 维护在线客户端映射表（username -> 连接）
// 2. 维护 presence 映射（username -> 聊天室id），随 join/leave 更新
// 3. 按聊天室扇出广播，单个慢连接不阻塞发送方
package chat

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/pkg/constants"
)

// Hub 连接与在线状态管理器
type Hub struct {
	// Clients 在线客户端映射表，Key 为 username，Value 为 *UserConn
	// 使用 sync.Map 实现并发安全
	Clients sync.Map

	// presence 映射 username -> roomId
	// join 时写入，leave 时删除；断线不清理，重连后由 connect 事件重新注册
	mu       sync.Mutex
	presence map[string]int64
}

// NewHub 创建 Hub 实例
func NewHub() *Hub {
	return &Hub{
		presence: make(map[string]int64),
	}
}

// Register 注册客户端连接
func (h *Hub) Register(client *UserConn) {
	h.Clients.Store(client.Username, client)
	zap.L().Debug("客户端已注册", zap.String("username", client.Username))
}

// Unregister 注销客户端连接
// 只移除连接，presence 条目保留（见 Enter 的注释）
func (h *Hub) Unregister(client *UserConn) {
	h.Clients.Delete(client.Username)
	client.closeSend()
	zap.L().Info("客户端已注销", zap.String("username", client.Username))
}

// GetClient 获取指定用户的连接，不在线时返回 nil
func (h *Hub) GetClient(username string) *UserConn {
	if v, ok := h.Clients.Load(username); ok {
		return v.(*UserConn)
	}
	return nil
}

// Enter 记录用户进入聊天室
func (h *Hub) Enter(username string, roomId int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.presence[username] = roomId
}

// Leave 清除用户的 presence 条目，不存在时无操作
func (h *Hub) Leave(username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.presence, username)
}

// RoomOf 查询用户当前所在的聊天室
func (h *Hub) RoomOf(username string) (int64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	roomId, ok := h.presence[username]
	return roomId, ok
}

// roomMembers 收集当前 presence 在指定聊天室的所有用户名
func (h *Hub) roomMembers(roomId int64) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var members []string
	for username, id := range h.presence {
		if id == roomId {
			members = append(members, username)
		}
	}
	return members
}

// BroadcastToRoom 向聊天室内所有在线连接广播事件帧
// msgUuid 非零时为聊天消息，写出成功后会被标记为已发送
// 扇出是非阻塞的：某个连接的发送缓冲满时跳过该连接并记录告警
func (h *Hub) BroadcastToRoom(roomId int64, event respond.ChatEventRespond, msgUuid int64) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("序列化广播事件失败", zap.Error(err))
		return
	}

	for _, username := range h.roomMembers(roomId) {
		client := h.GetClient(username)
		if client == nil {
			continue // 不在线，尽力而为
		}
		h.push(client, &MessageBack{Message: payload, Uuid: msgUuid})
	}
}

// SendTo 向单个连接发送事件帧（历史回放、错误提示）
func (h *Hub) SendTo(client *UserConn, event respond.ChatEventRespond, msgUuid int64) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("序列化事件失败", zap.Error(err))
		return
	}
	h.push(client, &MessageBack{Message: payload, Uuid: msgUuid})
}

// push 非阻塞投递，连接已关闭或缓冲满时丢弃
func (h *Hub) push(client *UserConn, back *MessageBack) {
	if !client.trySend(back) {
		zap.L().Warn("连接不可写，丢弃事件帧", zap.String("username", client.Username))
	}
}

// NewUserConn 构造客户端连接
func NewUserConn(conn WsConn, username string) *UserConn {
	return &UserConn{
		Conn:     conn,
		Username: username,
		SendBack: make(chan *MessageBack, constants.CHANNEL_SIZE),
	}
}
