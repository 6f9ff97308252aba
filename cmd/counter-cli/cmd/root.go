package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"counter-dapp/internal/contract"
	"counter-dapp/internal/mq"
	"counter-dapp/internal/notify"
	"counter-dapp/internal/session"
	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/config"
	"counter-dapp/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	rpcURL  string
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "counter-cli",
	Short: "计数器合约命令行工具",
	Long: `连接本地钱包，读取计数器合约的值，或者发送交易让计数器加一。
钱包来自 Keystore 文件 (counter-cli init 生成) 或配置中的助记词。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init(cfgFile)
		if rpcURL != "" {
			config.Global.Chain.RpcUrl = rpcURL
		}
		logger.Init(config.Global.App.Env)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	// Ctrl+C 取消正在等待的 RPC 或交易确认
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认 ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rpcURL, "rpc", "", "覆盖配置中的 RPC 节点地址")
}

// cliEnv 一次命令执行所需的会话和资源
type cliEnv struct {
	session *session.Controller
	closers []func()
}

func (e *cliEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// newCLIEnv 连接 RPC、探测钱包并组装会话控制器。通知直接打印到 out。
func newCLIEnv(ctx context.Context, out io.Writer) (*cliEnv, error) {
	client, err := contract.Dial(ctx, config.Global.Chain)
	if err != nil {
		return nil, err
	}
	env := &cliEnv{closers: []func(){client.Close}}

	provider := wallet.Detect(config.Global.Wallet, client.ChainID(), wallet.TerminalPrompt(os.Stderr))

	notifiers := notify.Multi{notify.NewConsole(out)}
	producer, err := mq.NewProducer(&config.Global)
	if err != nil {
		env.Close()
		return nil, err
	}
	if producer != nil {
		notifiers = append(notifiers, notify.NewPublisher(producer, config.Global.Notify.Topic))
		env.closers = append(env.closers, func() {
			if err := producer.Close(); err != nil {
				logger.Warn("关闭消息队列失败", zap.Error(err))
			}
		})
	}

	env.session = session.NewController(provider, session.NewContractChain(client), notifiers)
	return env, nil
}

// connect 所有链上命令的前置步骤
func (e *cliEnv) connect(ctx context.Context) (string, error) {
	return e.session.Connect(ctx)
}
