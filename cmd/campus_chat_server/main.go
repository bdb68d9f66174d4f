package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"campus_chat_server/internal/config"
	dao "campus_chat_server/internal/dao/mysql"
	myredis "campus_chat_server/internal/dao/redis"
	"campus_chat_server/internal/handler"
	"campus_chat_server/internal/https_server"
	"campus_chat_server/internal/infrastructure/logger"
	"campus_chat_server/internal/infrastructure/mq"
	"campus_chat_server/internal/service"
	"campus_chat_server/internal/service/chat"
	"campus_chat_server/internal/service/message"
	"campus_chat_server/pkg/util/jwt"
	"campus_chat_server/pkg/util/snowflake"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 4. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 5. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化 JWT 和雪花算法
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init()

	// 7. 初始化 Service 层 (依赖注入)
	// kafka 模式下聊天消息落库后异步发布到审计主题
	var auditProducer *mq.ChatAuditProducer
	var audit message.AuditPublisher
	if conf.KafkaConfig.MessageMode == "kafka" {
		auditProducer = mq.NewChatAuditProducer(&conf.KafkaConfig)
		go auditProducer.Start()
		audit = auditProducer
		zap.L().Info("Kafka 审计生产者启动成功")
	}
	service.InitServices(dao.Repos, audit)
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化聊天协调器
	chat.Init(service.Svc.User, service.Svc.Room, service.Svc.Message)
	zap.L().Info("聊天协调器初始化成功")

	// 9. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := https_server.Init(handlers)

	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务器启动成功", zap.String("host", host), zap.Int("port", port))

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	if auditProducer != nil {
		auditProducer.Close()
	}
	zap.L().Info("服务器已关闭")
}
