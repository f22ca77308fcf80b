package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/config"
	"github.com/Xushengqwer/discussion_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// Close 关闭底层 writer，释放连接。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendPostCreatedEvent 发送帖子创建事件到 Kafka
// - 意图: 通知下游服务（搜索、推荐等）有新帖子产生
// - 输入: ctx context.Context 上下文, postData events.PostEventData 帖子核心数据
// - 输出: error 错误信息
// - Kafka 未启用（brokers 为空）时生产者为 nil，事件静默丢弃
func (p *KafkaProducer) SendPostCreatedEvent(ctx context.Context, postData events.PostEventData) error {
	if p == nil {
		return nil
	}
	event := events.PostCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}
	return p.SendEvent(ctx, p.topics.PostCreated, event)
}

// SendCommentCreatedEvent 发送评论创建事件到 Kafka
// - 意图: 通知下游服务（通知、搜索等）有新评论产生
// - 输入: ctx context.Context 上下文, commentData events.CommentEventData 评论核心数据
// - 输出: error 错误信息
// - Kafka 未启用（brokers 为空）时生产者为 nil，事件静默丢弃
func (p *KafkaProducer) SendCommentCreatedEvent(ctx context.Context, commentData events.CommentEventData) error {
	if p == nil {
		return nil
	}
	event := events.CommentCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Comment:   commentData,
	}
	return p.SendEvent(ctx, p.topics.CommentCreated, event)
}

// SendVoteChangedEvent 发送投票变更事件到 Kafka
// - 意图: 把投票账本的每一次净变化同步给下游（排行榜、通知等）
// - 输入: ctx context.Context 上下文, event events.VoteChangedEvent（EventID 与时间戳由本方法补齐）
// - 输出: error 错误信息
// - Kafka 未启用（brokers 为空）时生产者为 nil，事件静默丢弃
func (p *KafkaProducer) SendVoteChangedEvent(ctx context.Context, event events.VoteChangedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now()
	return p.SendEvent(ctx, p.topics.VoteChanged, event)
}
