package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Notify NotifyConfig `mapstructure:"notify"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
}

// ChainConfig 描述固定的 RPC 节点与计数器合约
type ChainConfig struct {
	RpcUrl          string        `mapstructure:"rpc_url"`
	ContractAddress string        `mapstructure:"contract_address"`
	ChainID         int64         `mapstructure:"chain_id"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`    // 交易回执轮询间隔
	FinalityTimeout time.Duration `mapstructure:"finality_timeout"` // 等待上链的最长时间
}

type WalletConfig struct {
	KeystorePath   string `mapstructure:"keystore_path"`
	Password       string `mapstructure:"password"` // 通常通过环境变量 WALLET_PASSWORD 传入
	Mnemonic       string `mapstructure:"mnemonic"` // 仅开发环境使用
	DerivationPath string `mapstructure:"derivation_path"`
}

type NotifyConfig struct {
	MQType string `mapstructure:"mq_type"` // "none", "redis" or "kafka"
	Topic  string `mapstructure:"topic"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}

var Global Config

// Init 加载配置到 Global，失败直接退出进程。
// cfgFile 为空时按默认路径查找 config.yaml。
func Init(cfgFile string) {
	cfg, err := Load(cfgFile)
	if err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	Global = *cfg
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load 读取配置文件与环境变量，返回解析后的 Config
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 环境变量设置: chain.rpc_url -> CHAIN_RPC_URL
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")

	v.SetDefault("chain.rpc_url", "https://ethereum-sepolia-rpc.publicnode.com")
	v.SetDefault("chain.contract_address", "0x5c1f11da70abcd9c67c0aa01af23ae7962c6720b")
	v.SetDefault("chain.chain_id", 11155111)
	v.SetDefault("chain.poll_interval", 3*time.Second)
	v.SetDefault("chain.finality_timeout", 5*time.Minute)

	v.SetDefault("wallet.keystore_path", "wallet.json")
	v.SetDefault("wallet.derivation_path", "m/44'/60'/0'/0/0")
	// 没有默认值的 key 在 Unmarshal 时不会读取环境变量
	v.SetDefault("wallet.password", "")
	v.SetDefault("wallet.mnemonic", "")

	v.SetDefault("notify.mq_type", "none")
	v.SetDefault("notify.topic", "counter_events_notification")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
}
