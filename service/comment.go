package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/events"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/mq/producer"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
)

// CommentService 定义了处理评论业务逻辑的接口。
type CommentService interface {
	// CreateComment 处理发表评论的业务流程。
	// - 先校验帖子存在，再校验 ParentID 指向的父评论存在（如提供），
	//   两者任一未找到返回 commonerrors.ErrRepoNotFound。
	// - 成功创建后，异步触发 Kafka 事件通知下游服务。
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest, userID string, username string) (*vo.CommentVO, error)

	// ListCommentForest 返回指定帖子的全部评论，组装为回复森林。
	// - 每条评论带实时聚合的净得分与当前用户投票值。
	// - 帖子不存在返回 commonerrors.ErrRepoNotFound。
	ListCommentForest(ctx context.Context, req *dto.ListCommentsRequest, userID string) ([]*vo.CommentVO, error)
}

// commentService 是 CommentService 接口的具体实现。
type commentService struct {
	db          *gorm.DB
	commentRepo mysql.CommentRepository
	postRepo    mysql.PostRepository
	voteRepo    mysql.VoteRepository
	kafkaSvc    *producer.KafkaProducer
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	db *gorm.DB,
	commentRepo mysql.CommentRepository,
	postRepo mysql.PostRepository,
	voteRepo mysql.VoteRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		voteRepo:    voteRepo,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

// CreateComment 实现评论的创建。
func (s *commentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest, userID string, username string) (*vo.CommentVO, error) {
	// 1. 校验帖子存在。未找到时 ErrRepoNotFound 原样上抛，控制器映射为 404。
	if _, err := s.postRepo.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	// 2. 如提供了 ParentID，校验父评论存在。
	//    父评论属于其他帖子的情况这里不拦，组装回复森林时该评论会因父节点
	//    不在本帖评论集内而被丢弃。
	if req.ParentID != nil {
		if _, err := s.commentRepo.GetCommentByID(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	// 3. 落库。
	comment := &entities.Comment{
		Content:        req.Content,
		PostID:         req.PostID,
		ParentID:       req.ParentID,
		AuthorID:       userID,
		AuthorUsername: username,
	}
	if err := s.commentRepo.CreateComment(ctx, s.db, comment); err != nil {
		s.logger.Error("创建评论落库失败", zap.Error(err), zap.Uint64("postID", req.PostID), zap.String("userID", userID))
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	s.logger.Info("评论创建成功",
		zap.Uint64("commentID", comment.ID),
		zap.Uint64("postID", comment.PostID),
		zap.String("authorID", userID),
	)

	// 4. 异步发送评论创建事件。发送失败只记日志。
	go func() {
		bgCtx := context.Background()
		eventData := events.CommentEventData{
			ID:             comment.ID,
			Content:        comment.Content,
			PostID:         comment.PostID,
			ParentID:       comment.ParentID,
			AuthorID:       comment.AuthorID,
			AuthorUsername: comment.AuthorUsername,
			CreatedAt:      comment.CreatedAt.UnixMilli(),
		}
		if sendErr := s.kafkaSvc.SendCommentCreatedEvent(bgCtx, eventData); sendErr != nil {
			s.logger.Error("发送评论创建事件失败", zap.Error(sendErr), zap.Uint64("commentID", comment.ID))
		}
	}()

	return vo.NewCommentVO(comment), nil
}

// ListCommentForest 实现评论森林的查询与组装。
func (s *commentService) ListCommentForest(ctx context.Context, req *dto.ListCommentsRequest, userID string) ([]*vo.CommentVO, error) {
	// 1. 校验帖子存在，避免对不存在的帖子返回空森林造成误解。
	if _, err := s.postRepo.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	// 2. 取扁平评论列表（新评论在前）。
	comments, err := s.commentRepo.ListCommentsByPostID(ctx, req.PostID)
	if err != nil {
		s.logger.Error("查询帖子评论列表失败", zap.Error(err), zap.Uint64("postID", req.PostID))
		return nil, fmt.Errorf("查询评论列表失败: %w", err)
	}

	// 3. 组装森林，再批量补全净得分与用户投票值。
	forest := BuildCommentForest(comments)
	if len(comments) == 0 {
		return forest, nil
	}

	commentIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
	}
	scores, err := s.voteRepo.ScoreForComments(ctx, commentIDs)
	if err != nil {
		return nil, fmt.Errorf("批量聚合评论净得分失败: %w", err)
	}
	userVotes := map[uint64]int8{}
	if userID != "" {
		userVotes, err = s.voteRepo.UserVotesForComments(ctx, userID, commentIDs)
		if err != nil {
			return nil, fmt.Errorf("批量查询用户评论投票失败: %w", err)
		}
	}

	applyCommentVoteFields(forest, scores, userVotes)
	return forest, nil
}

// applyCommentVoteFields 自顶向下为森林里的每个节点填充净得分与用户投票值。
func applyCommentVoteFields(nodes []*vo.CommentVO, scores map[uint64]int64, userVotes map[uint64]int8) {
	for _, node := range nodes {
		node.VoteScore = scores[node.ID]
		node.UserVote = userVotes[node.ID]
		applyCommentVoteFields(node.Replies, scores, userVotes)
	}
}
