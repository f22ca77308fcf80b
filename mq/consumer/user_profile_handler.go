package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/models/events"
	"github.com/Xushengqwer/discussion_service/service"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// --- UserProfileChangedHandler ---

// UserProfileChangedHandler 消费用户资料变更事件，
// 把帖子与评论上冗余的作者用户名刷新为新值。
type UserProfileChangedHandler struct {
	logger      *core.ZapLogger
	profileSync service.ProfileSyncService
}

func NewUserProfileChangedHandler(logger *core.ZapLogger, profileSync service.ProfileSyncService) *UserProfileChangedHandler {
	return &UserProfileChangedHandler{
		logger:      logger,
		profileSync: profileSync,
	}
}

func (h *UserProfileChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("UserProfileChangedHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.UserProfileChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("UserProfileChangedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	if event.UserID == "" || event.Username == "" {
		h.logger.Warn("UserProfileChangedHandler: 事件缺少 userID 或 username，跳过",
			zap.String("event_id", event.EventID))
		return nil // 不重试字段不完整的消息
	}

	h.logger.Info("UserProfileChangedHandler: 成功解析用户资料变更消息",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID))

	syncCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.profileSync.SyncAuthorUsername(syncCtx, event.UserID, event.Username); err != nil {
		h.logger.Error("UserProfileChangedHandler: 同步冗余用户名失败",
			zap.Error(err),
			zap.String("user_id", event.UserID))
		return fmt.Errorf("UserProfileChangedHandler: 同步冗余用户名失败: %w", err)
	}

	h.logger.Info("UserProfileChangedHandler: 冗余用户名同步成功", zap.String("user_id", event.UserID))
	return nil
}
