package mq

import (
	"fmt"

	"counter-dapp/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewProducer 按 notify.mq_type 创建 Producer；"none" 或空返回 nil
func NewProducer(cfg *config.Config) (Producer, error) {
	switch cfg.Notify.MQType {
	case "", "none":
		return nil, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisProducer(rdb, 10000), nil
	case "kafka":
		if len(cfg.Kafka.Brokers) == 0 {
			return nil, fmt.Errorf("kafka.brokers is empty")
		}
		return NewKafkaProducer(cfg.Kafka.Brokers), nil
	default:
		return nil, fmt.Errorf("unknown notify.mq_type %q", cfg.Notify.MQType)
	}
}
