// Package chat 实现聊天系统的核心服务层
// coordinator.go
// 核心职责：解析 WebSocket 入站事件帧并驱动聊天会话
// 事件语义：
//   - connect: 重连后重新注册 presence 并广播上线通知
//   - join: 解析/创建聊天室，记录 presence，广播加入通知，回放历史给加入者
//   - send: 消息先落库再广播，落库失败只通知发送方
//   - leave: 广播离开通知后清除 presence
package chat

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/service"
)

var (
	GlobalHub         *Hub
	GlobalCoordinator *Coordinator
)

// UserDirectory 用户存在性查询
// service.UserService 满足此接口；测试中可注入替身
type UserDirectory interface {
	Exists(username string) (bool, error)
}

// Coordinator 聊天会话协调器
type Coordinator struct {
	hub      *Hub
	users    UserDirectory
	rooms    service.RoomService
	messages service.MessageService
}

// NewCoordinator 创建协调器实例
func NewCoordinator(hub *Hub, users UserDirectory, rooms service.RoomService, messages service.MessageService) *Coordinator {
	return &Coordinator{
		hub:      hub,
		users:    users,
		rooms:    rooms,
		messages: messages,
	}
}

// Init 初始化全局 Hub 与协调器，须在服务层初始化之后调用
func Init(users UserDirectory, rooms service.RoomService, messages service.MessageService) {
	GlobalHub = NewHub()
	GlobalCoordinator = NewCoordinator(GlobalHub, users, rooms, messages)
}

// Dispatch 解析入站事件帧并按 Event 字段路由
// 未知事件与非法 JSON 只记录日志，不断开连接
func (co *Coordinator) Dispatch(client *UserConn, jsonMessage []byte) {
	var req request.ChatEventRequest
	if err := json.Unmarshal(jsonMessage, &req); err != nil {
		zap.L().Warn("非法事件帧", zap.String("username", client.Username), zap.Error(err))
		return
	}

	switch req.Event {
	case "connect":
		co.Connect(client, req)
	case "join":
		co.Join(client, req)
	case "send":
		co.Send(client, req)
	case "leave":
		co.Leave(client, req)
	default:
		zap.L().Warn("未知事件类型", zap.String("event", req.Event), zap.String("username", client.Username))
	}
}

// Connect 处理重连事件
// 前端重连后用保存的 room_id 重新注册 presence；字段缺失时忽略
func (co *Coordinator) Connect(client *UserConn, req request.ChatEventRequest) {
	if req.Sender == "" || req.RoomId == 0 {
		return
	}
	co.hub.Enter(req.Sender, req.RoomId)
	co.hub.BroadcastToRoom(req.RoomId, respond.ChatEventRespond{
		Event:   respond.EventSystem,
		RoomId:  req.RoomId,
		Content: fmt.Sprintf("%s has connected to the room.", req.Sender),
		Color:   "green",
	}, 0)
}

// Join 处理进入聊天室事件
// 顺序：校验双方用户 -> 解析/创建聊天室 -> 记录 presence -> 广播加入通知 -> 仅向加入者回放历史
func (co *Coordinator) Join(client *UserConn, req request.ChatEventRequest) {
	if req.Sender == "" || req.Receiver == "" {
		co.sendSystemError(client, "sender and receiver are required.")
		return
	}
	for _, username := range []string{req.Sender, req.Receiver} {
		ok, err := co.users.Exists(username)
		if err != nil {
			zap.L().Error("查询用户失败", zap.String("username", username), zap.Error(err))
			co.sendSystemError(client, "failed to join the room, please retry.")
			return
		}
		if !ok {
			co.sendSystemError(client, fmt.Sprintf("user %s does not exist.", username))
			return
		}
	}

	roomId := co.rooms.GetOrCreateRoom(req.Sender, req.Receiver)
	co.hub.Enter(req.Sender, roomId)

	co.hub.BroadcastToRoom(roomId, respond.ChatEventRespond{
		Event:   respond.EventJoined,
		RoomId:  roomId,
		Sender:  req.Sender,
		Content: fmt.Sprintf("%s has joined the room.", req.Sender),
		Color:   "green",
	}, 0)

	// 历史回放只发给加入者本人，最旧的在前
	history, err := co.messages.Replay(roomId)
	if err != nil {
		zap.L().Error("回放历史消息失败", zap.Int64("roomId", roomId), zap.Error(err))
		return
	}
	for _, msg := range history {
		co.hub.SendTo(client, respond.ChatEventRespond{
			Event:   respond.EventChat,
			RoomId:  roomId,
			Sender:  msg.Sender,
			Content: msg.Content,
		}, 0)
	}
}

// Send 处理聊天消息
// 消息先落库再广播；落库失败时只向发送方回系统提示，不广播
func (co *Coordinator) Send(client *UserConn, req request.ChatEventRequest) {
	roomId, ok := co.hub.RoomOf(req.Sender)
	if !ok {
		roomId = req.RoomId
	}
	if roomId == 0 {
		co.sendSystemError(client, "join a room before sending messages.")
		return
	}

	msg, err := co.messages.Append(req.Sender, req.Receiver, roomId, req.Content)
	if err != nil {
		zap.L().Error("消息落库失败", zap.String("sender", req.Sender), zap.Int64("roomId", roomId), zap.Error(err))
		co.sendSystemError(client, "failed to send the message, please retry.")
		return
	}

	co.hub.BroadcastToRoom(roomId, respond.ChatEventRespond{
		Event:   respond.EventChat,
		RoomId:  roomId,
		Sender:  msg.Sender,
		Content: msg.Content,
	}, msg.Uuid)
}

// Leave 处理离开聊天室事件
// 先广播离开通知再清除 presence，保证离开者自己也能收到
func (co *Coordinator) Leave(client *UserConn, req request.ChatEventRequest) {
	roomId, ok := co.hub.RoomOf(req.Sender)
	if !ok {
		return
	}
	co.hub.BroadcastToRoom(roomId, respond.ChatEventRespond{
		Event:   respond.EventLeft,
		RoomId:  roomId,
		Sender:  req.Sender,
		Content: fmt.Sprintf("%s has left the room.", req.Sender),
		Color:   "red",
	}, 0)
	co.hub.Leave(req.Sender)
}

// Disconnect 连接断开时的尽力而为通知
// presence 条目保留：重连后由 connect 事件重新注册
func (co *Coordinator) Disconnect(client *UserConn) {
	roomId, ok := co.hub.RoomOf(client.Username)
	if !ok {
		return
	}
	co.hub.BroadcastToRoom(roomId, respond.ChatEventRespond{
		Event:   respond.EventSystem,
		RoomId:  roomId,
		Content: fmt.Sprintf("%s has disconnected from the room.", client.Username),
		Color:   "red",
	}, 0)
}

// sendSystemError 向单个连接发送系统错误提示
func (co *Coordinator) sendSystemError(client *UserConn, content string) {
	co.hub.SendTo(client, respond.ChatEventRespond{
		Event:   respond.EventSystem,
		Content: content,
		Color:   "red",
	}, 0)
}
