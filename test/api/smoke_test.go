package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/handler"
	"campus_chat_server/internal/https_server"
	"campus_chat_server/internal/model"
	"campus_chat_server/internal/service"
	"campus_chat_server/internal/service/chat"
	"campus_chat_server/internal/service/room"
	"campus_chat_server/pkg/util/jwt"
)

// ===== Service 层替身 =====

type stubUserService struct{}

func (stubUserService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{Username: req.Username}, nil
}
func (stubUserService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{Username: req.Username}, nil
}
func (stubUserService) RefreshToken(refreshToken string) (string, error) {
	return "new-access-token", nil
}
func (stubUserService) Exists(username string) (bool, error) { return true, nil }

type stubFriendService struct{}

func (stubFriendService) ApplyFriend(req request.ApplyFriendRequest) (string, error) {
	return "REQ_TEST", nil
}
func (stubFriendService) PassFriendApply(requestId string) error   { return nil }
func (stubFriendService) RefuseFriendApply(requestId string) error { return nil }
func (stubFriendService) GetFriendList(username string) ([]string, error) {
	return []string{"bob"}, nil
}
func (stubFriendService) GetFriendApplyList(username string) (*respond.FriendApplyListRespond, error) {
	return &respond.FriendApplyListRespond{}, nil
}
func (stubFriendService) DeleteFriend(username, friendName string) error { return nil }

type stubMessageService struct{}

func (stubMessageService) Append(sender, receiver string, roomId int64, content string) (*model.Message, error) {
	return &model.Message{Uuid: 1, RoomId: roomId, Sender: sender, Receiver: receiver, Content: content}, nil
}
func (stubMessageService) Replay(roomId int64) ([]model.Message, error) { return nil, nil }
func (stubMessageService) GetMessageList(roomId int64) ([]respond.MessageListRespond, error) {
	return []respond.MessageListRespond{}, nil
}
func (stubMessageService) MarkSent(uuid int64) {}

// ===== 辅助函数 =====

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	svcs := &service.Services{
		User:    stubUserService{},
		Friend:  stubFriendService{},
		Message: stubMessageService{},
		Room:    room.NewRegistry(),
	}
	chat.Init(svcs.User, svcs.Room, svcs.Message)

	engine := https_server.Init(handler.NewHandlers(svcs))
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server
}

func TestAllHTTPEndpoints_Smoke(t *testing.T) {
	server := newTestServer(t)
	client := &http.Client{Timeout: 5 * time.Second}

	accessToken, err := jwt.GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	authHeader := "Bearer " + accessToken

	// ===== 公开接口 =====
	resp := doReq(t, client, http.MethodPost, server.URL+"/register", mustJSON(t, map[string]any{
		"username": "alice",
		"password": "secret123",
	}), "")
	requireNot5xxOr404(t, "/register", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/login", mustJSON(t, map[string]any{
		"username": "alice",
		"password": "secret123",
	}), "")
	requireNot5xxOr404(t, "/login", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/refresh", mustJSON(t, map[string]any{
		"refresh_token": "some-refresh-token",
	}), "")
	requireNot5xxOr404(t, "/auth/refresh", resp)
	_ = resp.Body.Close()

	// ===== 需要鉴权的接口 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/user/exists?username=bob", nil, authHeader)
	requireNot5xxOr404(t, "/user/exists", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/friend/apply", mustJSON(t, map[string]any{
		"sender":   "alice",
		"receiver": "bob",
	}), authHeader)
	requireNot5xxOr404(t, "/friend/apply", resp)
	_ = resp.Body.Close()

	for _, path := range []string{"/friend/passApply", "/friend/refuseApply"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, map[string]any{
			"request_id": "REQ_TEST",
		}), authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	resp = doReq(t, client, http.MethodPost, server.URL+"/friend/delete", mustJSON(t, map[string]any{
		"username":    "alice",
		"friend_name": "bob",
	}), authHeader)
	requireNot5xxOr404(t, "/friend/delete", resp)
	_ = resp.Body.Close()

	for _, path := range []string{"/friend/list?username=alice", "/friend/applyList?username=alice"} {
		resp = doReq(t, client, http.MethodGet, server.URL+path, nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	resp = doReq(t, client, http.MethodGet, server.URL+"/room/getRoomId?userA=alice&userB=bob", nil, authHeader)
	requireNot5xxOr404(t, "/room/getRoomId", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/message/getMessageList?roomId=1", nil, authHeader)
	requireNot5xxOr404(t, "/message/getMessageList", resp)
	_ = resp.Body.Close()

	// 未携带 Token 的请求必须被拒绝
	resp = doReq(t, client, http.MethodGet, server.URL+"/friend/list?username=alice", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("未鉴权请求 status=%d, want 401", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestWebSocketJoinAndSend(t *testing.T) {
	server := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?username=alice"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	joinFrame, _ := json.Marshal(request.ChatEventRequest{Event: "join", Sender: "alice", Receiver: "bob"})
	if err := conn.WriteMessage(websocket.TextMessage, joinFrame); err != nil {
		t.Fatalf("write join: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read joined frame: %v", err)
	}
	var event respond.ChatEventRespond
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal joined frame: %v", err)
	}
	if event.Event != respond.EventJoined || event.Sender != "alice" {
		t.Fatalf("joined 帧内容 = %+v", event)
	}

	sendFrame, _ := json.Marshal(request.ChatEventRequest{Event: "send", Sender: "alice", Receiver: "bob", Content: "hello"})
	if err := conn.WriteMessage(websocket.TextMessage, sendFrame); err != nil {
		t.Fatalf("write send: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, payload, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read chat frame: %v", err)
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal chat frame: %v", err)
	}
	if event.Event != respond.EventChat || event.Content != "hello" {
		t.Fatalf("chat 帧内容 = %+v", event)
	}
}
