// Package handler 提供 HTTP 请求处理器
// 本文件处理好友关系相关的 API 请求
package handler

import (
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友关系请求处理器
type FriendHandler struct {
	friendSvc service.FriendService
}

// NewFriendHandler 创建好友处理器实例
func NewFriendHandler(friendSvc service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

// Apply 发送好友申请
// POST /friend/apply
// 请求体: request.ApplyFriendRequest
// 响应: { request_id: string }
func (h *FriendHandler) Apply(c *gin.Context) {
	var req request.ApplyFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	requestId, err := h.friendSvc.ApplyFriend(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"request_id": requestId})
}

// PassApply 通过好友申请
// POST /friend/passApply
// 请求体: request.HandleFriendApplyRequest
// 已处理过的申请静默跳过，仍返回成功
func (h *FriendHandler) PassApply(c *gin.Context) {
	var req request.HandleFriendApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.friendSvc.PassFriendApply(req.RequestId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RefuseApply 拒绝好友申请
// POST /friend/refuseApply
// 请求体: request.HandleFriendApplyRequest
func (h *FriendHandler) RefuseApply(c *gin.Context) {
	var req request.HandleFriendApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.friendSvc.RefuseFriendApply(req.RequestId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Delete 删除好友关系
// POST /friend/delete
// 请求体: request.DeleteFriendRequest (方向无关)
func (h *FriendHandler) Delete(c *gin.Context) {
	var req request.DeleteFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.friendSvc.DeleteFriend(req.Username, req.FriendName); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFriendList 获取好友列表
// GET /friend/list?username=xxx
// 响应: []string (好友用户名列表)
func (h *FriendHandler) GetFriendList(c *gin.Context) {
	var req request.OwnlistRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.friendSvc.GetFriendList(req.Username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFriendApplyList 获取待处理好友申请列表
// GET /friend/applyList?username=xxx
// 响应: respond.FriendApplyListRespond (收到/发出两组)
func (h *FriendHandler) GetFriendApplyList(c *gin.Context) {
	var req request.OwnlistRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.friendSvc.GetFriendApplyList(req.Username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
