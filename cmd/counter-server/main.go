package main

import (
	"context"
	"flag"
	"time"

	"counter-dapp/internal/contract"
	"counter-dapp/internal/handler"
	"counter-dapp/internal/mq"
	"counter-dapp/internal/notify"
	"counter-dapp/internal/server"
	"counter-dapp/internal/session"
	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/config"
	"counter-dapp/pkg/logger"

	"go.uber.org/zap"

	_ "counter-dapp/docs/swagger"
)

// @title Counter dApp API
// @version 1.0
// @description Wallet session and counter contract API

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfgFile := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// 0. 初始化 Config
	config.Init(*cfgFile)

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	// 2. 连接 RPC 节点
	dialCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := contract.Dial(dialCtx, config.Global.Chain)
	cancel()
	if err != nil {
		logger.Fatal("RPC 连接失败", zap.Error(err))
	}
	defer client.Close()

	// 3. 探测钱包: Keystore 的密码由页面表单随连接请求提交
	provider := wallet.Detect(config.Global.Wallet, client.ChainID(), wallet.ContextPassword)

	// 4. 通知: 页面 flash + 可选的消息队列
	flash := notify.NewFlash()
	notifiers := notify.Multi{flash}
	producer, err := mq.NewProducer(&config.Global)
	if err != nil {
		logger.Fatal("初始化消息队列失败", zap.Error(err))
	}
	if producer != nil {
		logger.Info("通知将同步发布到消息队列",
			zap.String("mq_type", config.Global.Notify.MQType),
			zap.String("topic", config.Global.Notify.Topic))
		notifiers = append(notifiers, notify.NewPublisher(producer, config.Global.Notify.Topic))
		defer producer.Close()
	}

	// 5. 会话控制器
	ctrl := session.NewController(provider, session.NewContractChain(client), notifiers)

	// 6. HTTP Router
	r := server.NewHTTPRouter(handler.NewCounterHandler(ctrl, flash))

	// 7. 启动应用 (阻塞)，关闭时给等待确认的请求留出时间
	app := server.New(server.Config{
		HttpPort:        config.Global.App.HttpPort,
		ShutdownTimeout: 30 * time.Second,
	}, r)
	app.Run()

	logger.Info("系统已退出")
}
