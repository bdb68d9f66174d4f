package friend

import (
	"errors"
	"testing"

	"campus_chat_server/internal/dao/mysql/repository"
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/enum/friend_request/friend_request_status_enum"
	"campus_chat_server/pkg/errorx"
)

// ===== 内存替身 =====

type fakeUserRepo struct {
	users map[string]bool
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.UserInfo, error) {
	if r.users[username] {
		return &model.UserInfo{Username: username}, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}

func (r *fakeUserRepo) Exists(username string) (bool, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) Create(user *model.UserInfo) error {
	r.users[user.Username] = true
	return nil
}

type fakeFriendRequestRepo struct {
	requests map[string]*model.FriendRequest
}

func (r *fakeFriendRequestRepo) FindByUuid(uuid string) (*model.FriendRequest, error) {
	if req, ok := r.requests[uuid]; ok {
		cp := *req
		return &cp, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "申请不存在")
}

func (r *fakeFriendRequestRepo) FindPendingByReceiver(username string) ([]model.FriendRequest, error) {
	var result []model.FriendRequest
	for _, req := range r.requests {
		if req.Receiver == username && req.Status == friend_request_status_enum.PENDING {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeFriendRequestRepo) FindPendingBySender(username string) ([]model.FriendRequest, error) {
	var result []model.FriendRequest
	for _, req := range r.requests {
		if req.Sender == username && req.Status == friend_request_status_enum.PENDING {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeFriendRequestRepo) Create(request *model.FriendRequest) error {
	cp := *request
	r.requests[request.Uuid] = &cp
	return nil
}

func (r *fakeFriendRequestRepo) Update(request *model.FriendRequest) error {
	cp := *request
	r.requests[request.Uuid] = &cp
	return nil
}

type fakeFriendshipRepo struct {
	friendships []model.Friendship
}

func (r *fakeFriendshipRepo) FindByUser(username string) ([]model.Friendship, error) {
	var result []model.Friendship
	for _, f := range r.friendships {
		if f.User1 == username || f.User2 == username {
			result = append(result, f)
		}
	}
	return result, nil
}

func (r *fakeFriendshipRepo) Create(friendship *model.Friendship) error {
	r.friendships = append(r.friendships, *friendship)
	return nil
}

func (r *fakeFriendshipRepo) DeleteByPair(userA, userB string) error {
	kept := r.friendships[:0]
	for _, f := range r.friendships {
		if (f.User1 == userA && f.User2 == userB) || (f.User1 == userB && f.User2 == userA) {
			continue
		}
		kept = append(kept, f)
	}
	r.friendships = kept
	return nil
}

// fakeCache 同步执行提交的任务，便于断言缓存失效
type fakeCache struct {
	sets map[string]map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{sets: make(map[string]map[string]bool)}
}

func (c *fakeCache) SMembers(key string) ([]string, error) {
	var members []string
	for m := range c.sets[key] {
		members = append(members, m)
	}
	return members, nil
}

func (c *fakeCache) SAdd(key string, members ...interface{}) error {
	if c.sets[key] == nil {
		c.sets[key] = make(map[string]bool)
	}
	for _, m := range members {
		c.sets[key][m.(string)] = true
	}
	return nil
}

func (c *fakeCache) DelKey(key string) error {
	delete(c.sets, key)
	return nil
}

func (c *fakeCache) SubmitTask(action func()) { action() }

func newTestService(usernames ...string) (*friendService, *fakeFriendRequestRepo, *fakeFriendshipRepo) {
	users := &fakeUserRepo{users: make(map[string]bool)}
	for _, u := range usernames {
		users.users[u] = true
	}
	requests := &fakeFriendRequestRepo{requests: make(map[string]*model.FriendRequest)}
	friendships := &fakeFriendshipRepo{}
	repos := repository.NewRepositoriesWith(users, requests, friendships, nil)
	return NewFriendServiceWithCache(repos, newFakeCache()), requests, friendships
}

// ===== 测试 =====

func TestApplyFriendUnknownUser(t *testing.T) {
	svc, _, _ := newTestService("alice")

	_, err := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "ghost"})
	if err == nil {
		t.Fatal("接收方不存在时应报错")
	}
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeUnknownUser {
		t.Fatalf("expected CodeUnknownUser, got %v", err)
	}

	if _, err := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "ghost", Receiver: "alice"}); err == nil {
		t.Fatal("发送方不存在时应报错")
	}
}

func TestApplyFriendCreatesPending(t *testing.T) {
	svc, requests, _ := newTestService("alice", "bob")

	requestId, err := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err != nil {
		t.Fatalf("ApplyFriend: %v", err)
	}
	stored := requests.requests[requestId]
	if stored == nil {
		t.Fatal("申请未落库")
	}
	if stored.Status != friend_request_status_enum.PENDING {
		t.Fatalf("新申请状态 = %d, want PENDING", stored.Status)
	}
}

// 同一对用户之间允许重复申请
func TestApplyFriendDuplicatesAllowed(t *testing.T) {
	svc, requests, _ := newTestService("alice", "bob")

	id1, err := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err != nil {
		t.Fatalf("第一次申请: %v", err)
	}
	id2, err := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err != nil {
		t.Fatalf("第二次申请: %v", err)
	}
	if id1 == id2 {
		t.Fatal("两次申请拿到了同一个申请id")
	}
	if len(requests.requests) != 2 {
		t.Fatalf("申请数 = %d, want 2", len(requests.requests))
	}
}

func TestPassFriendApply(t *testing.T) {
	svc, requests, friendships := newTestService("alice", "bob")

	requestId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err := svc.PassFriendApply(requestId); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}

	if requests.requests[requestId].Status != friend_request_status_enum.ACCEPTED {
		t.Fatal("申请状态未流转到 ACCEPTED")
	}
	if len(friendships.friendships) != 1 {
		t.Fatalf("好友关系数 = %d, want 1", len(friendships.friendships))
	}
}

// 重复通过同一申请不会建出第二条边
func TestPassFriendApplyIdempotent(t *testing.T) {
	svc, _, friendships := newTestService("alice", "bob")

	requestId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	for i := 0; i < 3; i++ {
		if err := svc.PassFriendApply(requestId); err != nil {
			t.Fatalf("第 %d 次 PassFriendApply: %v", i+1, err)
		}
	}
	if len(friendships.friendships) != 1 {
		t.Fatalf("好友关系数 = %d, want 1", len(friendships.friendships))
	}
}

func TestPassFriendApplyMissingRequest(t *testing.T) {
	svc, _, friendships := newTestService("alice", "bob")

	// 不存在的申请静默跳过
	if err := svc.PassFriendApply("no-such-request"); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}
	if len(friendships.friendships) != 0 {
		t.Fatal("不存在的申请不应建边")
	}
}

// 已拒绝的申请再通过不会建边
func TestPassAfterRefuseIsNoop(t *testing.T) {
	svc, requests, friendships := newTestService("alice", "bob")

	requestId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err := svc.RefuseFriendApply(requestId); err != nil {
		t.Fatalf("RefuseFriendApply: %v", err)
	}
	if requests.requests[requestId].Status != friend_request_status_enum.REJECTED {
		t.Fatal("申请状态未流转到 REJECTED")
	}

	if err := svc.PassFriendApply(requestId); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}
	if requests.requests[requestId].Status != friend_request_status_enum.REJECTED {
		t.Fatal("已拒绝的申请状态被改写")
	}
	if len(friendships.friendships) != 0 {
		t.Fatal("已拒绝的申请不应建边")
	}
}

// 申请通过后双方的好友列表都包含对方
func TestFriendListBothDirections(t *testing.T) {
	svc, _, _ := newTestService("alice", "bob")

	requestId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err := svc.PassFriendApply(requestId); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}

	aliceFriends, err := svc.GetFriendList("alice")
	if err != nil {
		t.Fatalf("GetFriendList(alice): %v", err)
	}
	if len(aliceFriends) != 1 || aliceFriends[0] != "bob" {
		t.Fatalf("alice 的好友列表 = %v, want [bob]", aliceFriends)
	}

	bobFriends, err := svc.GetFriendList("bob")
	if err != nil {
		t.Fatalf("GetFriendList(bob): %v", err)
	}
	if len(bobFriends) != 1 || bobFriends[0] != "alice" {
		t.Fatalf("bob 的好友列表 = %v, want [alice]", bobFriends)
	}
}

func TestGetFriendApplyListGrouping(t *testing.T) {
	svc, _, _ := newTestService("alice", "bob", "carol")

	sentId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	receivedId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "carol", Receiver: "alice"})

	list, err := svc.GetFriendApplyList("alice")
	if err != nil {
		t.Fatalf("GetFriendApplyList: %v", err)
	}
	if len(list.Sent) != 1 || list.Sent[0].RequestId != sentId {
		t.Fatalf("发出的申请 = %+v", list.Sent)
	}
	if len(list.Received) != 1 || list.Received[0].RequestId != receivedId {
		t.Fatalf("收到的申请 = %+v", list.Received)
	}

	// 处理后的申请不再出现在列表中
	if err := svc.PassFriendApply(receivedId); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}
	list, _ = svc.GetFriendApplyList("alice")
	if len(list.Received) != 0 {
		t.Fatalf("已处理的申请仍在列表中: %+v", list.Received)
	}
}

func TestDeleteFriend(t *testing.T) {
	svc, _, _ := newTestService("alice", "bob")

	requestId, _ := svc.ApplyFriend(request.ApplyFriendRequest{Sender: "alice", Receiver: "bob"})
	if err := svc.PassFriendApply(requestId); err != nil {
		t.Fatalf("PassFriendApply: %v", err)
	}

	// 方向无关：bob 也可以删除这条关系
	if err := svc.DeleteFriend("bob", "alice"); err != nil {
		t.Fatalf("DeleteFriend: %v", err)
	}

	aliceFriends, _ := svc.GetFriendList("alice")
	if len(aliceFriends) != 0 {
		t.Fatalf("删除后 alice 的好友列表 = %v", aliceFriends)
	}

	// 关系不存在时静默成功
	if err := svc.DeleteFriend("bob", "alice"); err != nil {
		t.Fatalf("重复删除: %v", err)
	}
}
