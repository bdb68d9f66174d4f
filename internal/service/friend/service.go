// Package friend 实现好友关系状态机业务逻辑
// 申请 PENDING -> ACCEPTED/REJECTED 只流转一次；好友关系是无向边，仅在申请通过时创建
package friend

import (
	"go.uber.org/zap"

	"campus_chat_server/internal/dao/mysql/repository"
	myredis "campus_chat_server/internal/dao/redis"
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/enum/friend_request/friend_request_status_enum"
	"campus_chat_server/pkg/errorx"
	"campus_chat_server/pkg/util/random"
)

// CacheOps 好友列表缓存操作接口
// 生产环境由 dao/redis 实现，测试中可替换为空实现
type CacheOps interface {
	SMembers(key string) ([]string, error)
	SAdd(key string, members ...interface{}) error
	DelKey(key string) error
	SubmitTask(action func())
}

// redisCacheOps 基于 dao/redis 的默认实现
type redisCacheOps struct{}

func (redisCacheOps) SMembers(key string) ([]string, error)       { return myredis.SMembers(key) }
func (redisCacheOps) SAdd(key string, members ...interface{}) error { return myredis.SAdd(key, members...) }
func (redisCacheOps) DelKey(key string) error                     { return myredis.DelKey(key) }
func (redisCacheOps) SubmitTask(action func())                    { myredis.SubmitCacheTask(action) }

// friendService 好友业务逻辑实现
type friendService struct {
	repos *repository.Repositories
	cache CacheOps
}

// NewFriendService 构造函数，使用 Redis 缓存
func NewFriendService(repos *repository.Repositories) *friendService {
	return &friendService{repos: repos, cache: redisCacheOps{}}
}

// NewFriendServiceWithCache 构造函数，注入自定义缓存实现
func NewFriendServiceWithCache(repos *repository.Repositories, cache CacheOps) *friendService {
	return &friendService{repos: repos, cache: cache}
}

// friendListCacheKey 好友列表缓存键
func friendListCacheKey(username string) string {
	return "friend_relation:" + username
}

// ApplyFriend 发送好友申请
// 双方用户必须存在；同一对用户之间允许重复申请，不做去重
func (s *friendService) ApplyFriend(req request.ApplyFriendRequest) (string, error) {
	for _, username := range []string{req.Sender, req.Receiver} {
		exists, err := s.repos.User.Exists(username)
		if err != nil {
			zap.L().Error("查询用户失败", zap.Error(err), zap.String("username", username))
			return "", errorx.ErrServerBusy
		}
		if !exists {
			return "", errorx.Newf(errorx.CodeUnknownUser, "用户 %s 不存在", username)
		}
	}

	friendRequest := &model.FriendRequest{
		Uuid:     random.GetNowAndLenRandomString(14),
		Sender:   req.Sender,
		Receiver: req.Receiver,
		Status:   friend_request_status_enum.PENDING,
	}
	if err := s.repos.FriendRequest.Create(friendRequest); err != nil {
		zap.L().Error("创建好友申请失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	return friendRequest.Uuid, nil
}

// PassFriendApply 通过好友申请
// 申请不存在或已被处理时静默不做任何修改，调用方可安全重复调用，
// 但不能据此认定好友关系已建立
func (s *friendService) PassFriendApply(requestId string) error {
	friendRequest, err := s.repos.FriendRequest.FindByUuid(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil
		}
		zap.L().Error("查询好友申请失败", zap.Error(err), zap.String("requestId", requestId))
		return errorx.ErrServerBusy
	}
	if friendRequest.Status != friend_request_status_enum.PENDING {
		return nil
	}

	// 申请状态流转和建边在同一个事务内完成
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		friendRequest.Status = friend_request_status_enum.ACCEPTED
		if err := txRepos.FriendRequest.Update(friendRequest); err != nil {
			return err
		}

		friendship := &model.Friendship{
			Uuid:  random.GetNowAndLenRandomString(14),
			User1: friendRequest.Sender,
			User2: friendRequest.Receiver,
		}
		return txRepos.Friendship.Create(friendship)
	})
	if err != nil {
		zap.L().Error("通过好友申请失败", zap.Error(err), zap.String("requestId", requestId))
		return errorx.ErrServerBusy
	}

	// 异步失效双方的好友列表缓存
	s.invalidateFriendCache(friendRequest.Sender, friendRequest.Receiver)
	return nil
}

// RefuseFriendApply 拒绝好友申请
// 与 PassFriendApply 相同的守卫：非 PENDING 申请静默跳过，不建边
func (s *friendService) RefuseFriendApply(requestId string) error {
	friendRequest, err := s.repos.FriendRequest.FindByUuid(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil
		}
		zap.L().Error("查询好友申请失败", zap.Error(err), zap.String("requestId", requestId))
		return errorx.ErrServerBusy
	}
	if friendRequest.Status != friend_request_status_enum.PENDING {
		return nil
	}

	friendRequest.Status = friend_request_status_enum.REJECTED
	if err := s.repos.FriendRequest.Update(friendRequest); err != nil {
		zap.L().Error("拒绝好友申请失败", zap.Error(err), zap.String("requestId", requestId))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetFriendList 获取好友用户名列表
// 先查 Redis Set 缓存，未命中时回源数据库并写回缓存
func (s *friendService) GetFriendList(username string) ([]string, error) {
	cacheKey := friendListCacheKey(username)

	friends, err := s.cache.SMembers(cacheKey)
	if err == nil && len(friends) > 0 {
		return friends, nil
	}

	friendships, err := s.repos.Friendship.FindByUser(username)
	if err != nil {
		zap.L().Error("查询好友关系失败", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	friends = make([]string, 0, len(friendships))
	for _, friendship := range friendships {
		if friendship.User1 == username {
			friends = append(friends, friendship.User2)
		} else {
			friends = append(friends, friendship.User1)
		}
	}

	if len(friends) > 0 {
		members := make([]interface{}, len(friends))
		for i, v := range friends {
			members[i] = v
		}
		_ = s.cache.SAdd(cacheKey, members...)
	}

	return friends, nil
}

// GetFriendApplyList 获取待处理的好友申请
// 返回收到和发出两组，均只含 PENDING 状态
func (s *friendService) GetFriendApplyList(username string) (*respond.FriendApplyListRespond, error) {
	received, err := s.repos.FriendRequest.FindPendingByReceiver(username)
	if err != nil {
		zap.L().Error("查询收到的申请失败", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	sent, err := s.repos.FriendRequest.FindPendingBySender(username)
	if err != nil {
		zap.L().Error("查询发出的申请失败", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.FriendApplyListRespond{
		Received: make([]respond.FriendApplyRespond, 0, len(received)),
		Sent:     make([]respond.FriendApplyRespond, 0, len(sent)),
	}
	for _, r := range received {
		rsp.Received = append(rsp.Received, respond.FriendApplyRespond{
			RequestId: r.Uuid,
			Sender:    r.Sender,
			Receiver:  r.Receiver,
		})
	}
	for _, r := range sent {
		rsp.Sent = append(rsp.Sent, respond.FriendApplyRespond{
			RequestId: r.Uuid,
			Sender:    r.Sender,
			Receiver:  r.Receiver,
		})
	}
	return rsp, nil
}

// DeleteFriend 删除好友关系
// 方向无关，关系不存在时静默成功
func (s *friendService) DeleteFriend(username, friendName string) error {
	if err := s.repos.Friendship.DeleteByPair(username, friendName); err != nil {
		zap.L().Error("删除好友关系失败", zap.Error(err),
			zap.String("username", username), zap.String("friendName", friendName))
		return errorx.ErrServerBusy
	}

	s.invalidateFriendCache(username, friendName)
	return nil
}

// invalidateFriendCache 异步失效好友列表缓存
func (s *friendService) invalidateFriendCache(usernames ...string) {
	s.cache.SubmitTask(func() {
		for _, username := range usernames {
			_ = s.cache.DelKey(friendListCacheKey(username))
		}
	})
}
