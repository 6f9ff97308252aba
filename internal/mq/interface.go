package mq

import "context"

// Producer 消息生产者接口，用于向外部推送用户通知
type Producer interface {
	// Publish 发送消息
	// topic: 主题 (Redis Stream 名称 / Kafka Topic)
	// key: 分区键 (Kafka 用于保证同一账户的消息有序)
	Publish(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}
