package producer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/discussion_service/models/events"
)

// 未配置 Kafka 时各业务服务会注入 nil 生产者，写路径的异步发送
// 必须安全返回而不是在 goroutine 里崩掉整个进程。
func TestKafkaProducer_NilReceiverDropsEvents(t *testing.T) {
	var p *KafkaProducer
	ctx := context.Background()

	assert.NotPanics(t, func() {
		assert.NoError(t, p.SendPostCreatedEvent(ctx, events.PostEventData{ID: 1, Title: "hello"}))
	})
	assert.NotPanics(t, func() {
		assert.NoError(t, p.SendCommentCreatedEvent(ctx, events.CommentEventData{ID: 1, PostID: 1}))
	})
	assert.NotPanics(t, func() {
		assert.NoError(t, p.SendVoteChangedEvent(ctx, events.VoteChangedEvent{UserID: "u1", Value: 1}))
	})
}
