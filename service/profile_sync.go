package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/repo/mysql"
)

// ProfileSyncService 负责把用户服务的资料变更同步到本服务的冗余字段。
// 帖子与评论上的 author_username 是展示用冗余，权威数据在用户服务，
// 通过消费其变更事件保持最终一致。
type ProfileSyncService interface {
	// SyncAuthorUsername 把指定用户在 posts 与 comments 上的冗余用户名刷新为新值。
	// 用户没有任何帖子或评论时是空操作，不算错误。
	SyncAuthorUsername(ctx context.Context, userID string, username string) error
}

// profileSyncService 是 ProfileSyncService 接口的具体实现。
type profileSyncService struct {
	postRepo    mysql.PostRepository
	commentRepo mysql.CommentRepository
	logger      *core.ZapLogger
}

// NewProfileSyncService 是 profileSyncService 的构造函数。
func NewProfileSyncService(postRepo mysql.PostRepository, commentRepo mysql.CommentRepository, logger *core.ZapLogger) ProfileSyncService {
	return &profileSyncService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// SyncAuthorUsername 实现冗余用户名的刷新。
// 两张表的更新不包事务：事件处理是幂等的，失败后整条消息会被重试，
// 先成功的那张表重复刷新同一个值没有副作用。
func (s *profileSyncService) SyncAuthorUsername(ctx context.Context, userID string, username string) error {
	if userID == "" || username == "" {
		return fmt.Errorf("同步冗余用户名参数不完整 (userID=%q, username=%q)", userID, username)
	}

	postRows, err := s.postRepo.UpdateAuthorUsername(ctx, userID, username)
	if err != nil {
		return fmt.Errorf("刷新帖子冗余用户名失败: %w", err)
	}
	commentRows, err := s.commentRepo.UpdateAuthorUsername(ctx, userID, username)
	if err != nil {
		return fmt.Errorf("刷新评论冗余用户名失败: %w", err)
	}

	s.logger.Info("冗余用户名同步完成",
		zap.String("userID", userID),
		zap.String("username", username),
		zap.Int64("postRows", postRows),
		zap.Int64("commentRows", commentRows),
	)
	return nil
}
