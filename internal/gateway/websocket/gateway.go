// Package websocket WebSocket 接入层
// 核心职责：HTTP 升级为 WebSocket，注册连接并启动读写协程
package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"campus_chat_server/internal/service/chat"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewClientInit 升级 HTTP 连接为 WebSocket 并接入 Hub
func NewClientInit(c *gin.Context, username string) error {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws升级失败", zap.String("username", username), zap.Error(err))
		return err
	}
	client := chat.NewUserConn(conn, username)
	chat.GlobalHub.Register(client)
	go client.Read()
	go client.Write()
	zap.L().Info("ws连接成功", zap.String("username", username))
	return nil
}

// ClientLogout 主动登出时关闭对应的连接
// 底层连接关闭后由读协程完成注销与下线通知
func ClientLogout(username string) error {
	client := chat.GlobalHub.GetClient(username)
	if client == nil {
		return nil
	}
	if err := client.Conn.Close(); err != nil {
		zap.L().Error("关闭ws连接失败", zap.String("username", username), zap.Error(err))
		return err
	}
	return nil
}
