package notify

import (
	"context"
	"encoding/json"

	"counter-dapp/internal/mq"
	"counter-dapp/pkg/logger"

	"go.uber.org/zap"
)

// Publisher 把通知以 JSON 推送到消息队列，供其他前端订阅。
// 推送失败只记录日志，不影响会话操作。
type Publisher struct {
	producer mq.Producer
	topic    string
}

func NewPublisher(producer mq.Producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Notify(ctx context.Context, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		logger.Error("序列化通知失败", zap.Error(err))
		return
	}

	if err := p.producer.Publish(ctx, p.topic, n.Account, payload); err != nil {
		logger.Error("推送通知失败", zap.String("topic", p.topic), zap.Error(err))
	}
}
