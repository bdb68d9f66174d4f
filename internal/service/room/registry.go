// Package room 实现聊天室注册表
// 将无序用户对映射到稳定的聊天室id，id 由单调计数器分配，进程生命周期内不回收
package room

import (
	"sync"

	"campus_chat_server/pkg/errorx"
)

// Counter 单调递增计数器，聊天室id的唯一来源
// 同一个值绝不会被分配两次
type Counter struct {
	mu   sync.Mutex
	last int64
}

// Next 返回下一个id
func (c *Counter) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return c.last
}

// Registry 聊天室注册表
// key 为规范化后的用户对（字典序排序），value 为聊天室id
// 查找和分配在同一个临界区内完成：两个参与者并发首次加入时必须拿到同一个id
type Registry struct {
	mu      sync.Mutex
	counter Counter
	rooms   map[pairKey]int64
}

// pairKey 规范化的用户对，构造时保证 a <= b
type pairKey struct {
	a, b string
}

// newPairKey 规范化用户对，与参数顺序无关
func newPairKey(userA, userB string) pairKey {
	if userA > userB {
		userA, userB = userB, userA
	}
	return pairKey{a: userA, b: userB}
}

// NewRegistry 创建聊天室注册表
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[pairKey]int64),
	}
}

// GetOrCreateRoom 返回一对用户的聊天室id，不存在时分配新id
// 整个 lookup-or-create 在单个临界区内，并发调用不会为同一对用户分配两个id
func (r *Registry) GetOrCreateRoom(userA, userB string) int64 {
	key := newPairKey(userA, userB)

	r.mu.Lock()
	defer r.mu.Unlock()

	if roomId, ok := r.rooms[key]; ok {
		return roomId
	}
	roomId := r.counter.Next()
	r.rooms[key] = roomId
	return roomId
}

// GetRoomId 只读查询一对用户的聊天室id
// 聊天室不存在时返回 ErrRoomNotFound，不会创建
func (r *Registry) GetRoomId(userA, userB string) (int64, error) {
	key := newPairKey(userA, userB)

	r.mu.Lock()
	defer r.mu.Unlock()

	roomId, ok := r.rooms[key]
	if !ok {
		return 0, errorx.ErrRoomNotFound
	}
	return roomId, nil
}
