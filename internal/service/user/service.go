// Package user 实现用户账号业务逻辑
// 注册、密码登录、Token 刷新，以及供聊天子系统使用的存在性检查
package user

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"campus_chat_server/internal/dao/mysql/repository"
	myredis "campus_chat_server/internal/dao/redis"
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/dto/respond"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/constants"
	"campus_chat_server/pkg/errorx"
	"campus_chat_server/pkg/util/jwt"
)

// userService 用户业务逻辑实现
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// refreshTokenKey Refresh Token 的 Redis 存储键
func refreshTokenKey(username string) string {
	return "refresh_token:" + username
}

// Register 用户注册
// 用户名唯一；密码使用 bcrypt 哈希后存储
func (s *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	exists, err := s.repos.User.Exists(req.Username)
	if err != nil {
		zap.L().Error("查询用户失败", zap.Error(err), zap.String("username", req.Username))
		return nil, errorx.ErrServerBusy
	}
	if exists {
		return nil, errorx.New(errorx.CodeUserExist, "用户已存在")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("密码哈希失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	newUser := &model.UserInfo{
		Username:    req.Username,
		Password:    string(hashed),
		AccountType: req.AccountType,
		StaffType:   req.StaffType,
	}
	if err := s.repos.User.Create(newUser); err != nil {
		zap.L().Error("创建用户失败", zap.Error(err), zap.String("username", req.Username))
		return nil, errorx.ErrServerBusy
	}

	return &respond.RegisterRespond{
		Username:    newUser.Username,
		AccountType: newUser.AccountType,
	}, nil
}

// Login 密码登录
// 成功后签发 Access/Refresh Token，Refresh Token 的 tokenID 存入 Redis 用于校验
func (s *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	userInfo, err := s.repos.User.FindByUsername(req.Username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrUnknownUser
		}
		zap.L().Error("查询用户失败", zap.Error(err), zap.String("username", req.Username))
		return nil, errorx.ErrServerBusy
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userInfo.Password), []byte(req.Password)); err != nil {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码错误")
	}

	accessToken, err := jwt.GenerateAccessToken(userInfo.Username)
	if err != nil {
		zap.L().Error("签发 access token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userInfo.Username)
	if err != nil {
		zap.L().Error("签发 refresh token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 单点互踢：同一用户重新登录后旧的 Refresh Token 失效
	if err := myredis.SetKeyEx(refreshTokenKey(userInfo.Username), tokenID,
		time.Hour*constants.REFRESH_TOKEN_EXPIRY_HOURS); err != nil {
		zap.L().Warn("存储 refresh token 失败", zap.Error(err))
	}

	return &respond.LoginRespond{
		Username:     userInfo.Username,
		AccountType:  userInfo.AccountType,
		StaffType:    userInfo.StaffType,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 使用 Refresh Token 换取新的 Access Token
func (s *userService) RefreshToken(refreshToken string) (string, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Subject != "refresh_token" {
		return "", errorx.New(errorx.CodeUnauthorized, "请使用 Refresh Token 刷新")
	}

	storedTokenID, err := myredis.GetKey(refreshTokenKey(claims.Username))
	if err != nil || storedTokenID == "" || storedTokenID != claims.TokenID {
		return "", errorx.New(errorx.CodeUnauthorized, "Refresh Token 已失效，请重新登录")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.Username)
	if err != nil {
		zap.L().Error("签发 access token 失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	return accessToken, nil
}

// Exists 用户是否存在
// 聊天子系统在 join 校验参与者时调用
func (s *userService) Exists(username string) (bool, error) {
	exists, err := s.repos.User.Exists(username)
	if err != nil {
		zap.L().Error("查询用户失败", zap.Error(err), zap.String("username", username))
		return false, errorx.ErrServerBusy
	}
	return exists, nil
}
