package message

import (
	"fmt"
	"testing"

	"campus_chat_server/internal/dao/mysql/repository"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/enum/message/message_status_enum"
	"campus_chat_server/pkg/errorx"
)

// fakeMessageRepo 按插入顺序保存消息的内存替身
type fakeMessageRepo struct {
	messages  []model.Message
	createErr error
	statusLog []int64
}

func (r *fakeMessageRepo) FindByRoomId(roomId int64) ([]model.Message, error) {
	var result []model.Message
	for _, m := range r.messages {
		if m.RoomId == roomId {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) Create(message *model.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) UpdateStatus(uuid int64, status int8) error {
	r.statusLog = append(r.statusLog, uuid)
	for i := range r.messages {
		if r.messages[i].Uuid == uuid {
			r.messages[i].Status = status
		}
	}
	return nil
}

// capturingAudit 记录发布的审计负载
type capturingAudit struct {
	payloads [][]byte
}

func (a *capturingAudit) Publish(payload []byte) {
	a.payloads = append(a.payloads, payload)
}

func newTestService(audit AuditPublisher) (*messageService, *fakeMessageRepo) {
	repo := &fakeMessageRepo{}
	repos := repository.NewRepositoriesWith(nil, nil, nil, repo)
	return NewMessageService(repos, audit), repo
}

func TestAppendAssignsFields(t *testing.T) {
	svc, repo := newTestService(nil)

	msg, err := svc.Append("alice", "bob", 7, "hello")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if msg.Uuid == 0 {
		t.Fatal("消息未分配雪花id")
	}
	if msg.SendAt.IsZero() {
		t.Fatal("消息未分配发送时间")
	}
	if msg.Status != message_status_enum.Unsent {
		t.Fatalf("新消息状态 = %d, want Unsent", msg.Status)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("落库消息数 = %d, want 1", len(repo.messages))
	}
}

func TestAppendCreateError(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.createErr = errorx.New(errorx.CodeDBError, "db down")

	if _, err := svc.Append("alice", "bob", 7, "hello"); err == nil {
		t.Fatal("落库失败时 Append 应报错")
	}
	if len(repo.messages) != 0 {
		t.Fatal("落库失败时不应保存消息")
	}
}

// 回放顺序与追加顺序一致，最旧的在前
func TestReplayPreservesOrder(t *testing.T) {
	svc, _ := newTestService(nil)

	for i := 0; i < 5; i++ {
		if _, err := svc.Append("alice", "bob", 7, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	// 其他聊天室的消息不应混入
	if _, err := svc.Append("carol", "dave", 8, "other"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	history, err := svc.Replay(7)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(history) != 5 {
		t.Fatalf("回放消息数 = %d, want 5", len(history))
	}
	for i, msg := range history {
		if want := fmt.Sprintf("msg-%d", i); msg.Content != want {
			t.Fatalf("history[%d].Content = %q, want %q", i, msg.Content, want)
		}
	}
}

func TestGetMessageList(t *testing.T) {
	svc, _ := newTestService(nil)

	if _, err := svc.Append("alice", "bob", 7, "hello"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	list, err := svc.GetMessageList(7)
	if err != nil {
		t.Fatalf("GetMessageList: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("消息数 = %d, want 1", len(list))
	}
	if list[0].Sender != "alice" || list[0].Content != "hello" {
		t.Fatalf("消息内容 = %+v", list[0])
	}
	if list[0].SendAt == "" {
		t.Fatal("发送时间未格式化")
	}
}

func TestMarkSent(t *testing.T) {
	svc, repo := newTestService(nil)

	msg, _ := svc.Append("alice", "bob", 7, "hello")
	svc.MarkSent(msg.Uuid)

	if len(repo.statusLog) != 1 || repo.statusLog[0] != msg.Uuid {
		t.Fatalf("statusLog = %v", repo.statusLog)
	}
	if repo.messages[0].Status != message_status_enum.Sent {
		t.Fatal("消息状态未更新为已发送")
	}
}

func TestAppendPublishesAudit(t *testing.T) {
	audit := &capturingAudit{}
	svc, repo := newTestService(audit)

	if _, err := svc.Append("alice", "bob", 7, "hello"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(audit.payloads) != 1 {
		t.Fatalf("审计发布次数 = %d, want 1", len(audit.payloads))
	}

	// 落库失败时不发布审计
	repo.createErr = errorx.New(errorx.CodeDBError, "db down")
	_, _ = svc.Append("alice", "bob", 7, "boom")
	if len(audit.payloads) != 1 {
		t.Fatal("落库失败的消息不应进入审计流")
	}
}
