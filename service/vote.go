package service

import (
	"context"
	"errors"
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

// voteTransition 描述一次点击在账本上应落成的动作。
type voteTransition struct {
	Outcome    string // vo.VoteOutcomeCreated / Updated / Removed
	NewValue   int8   // Created/Updated 时写入的值，Removed 时无意义
	ScoreDelta int8   // 目标净得分的变化量
}

// resolveVoteTransition 根据现存投票与本次请求值推导账本动作。
// 纯函数，规则:
//   - 无现存投票        -> 新建，得分变化 = requested
//   - 现存值 == requested -> 撤销（同值重投即取消），得分变化 = -requested
//   - 现存值 != requested -> 改票，得分变化 = 2*requested（从 -1 翻到 +1 是 +2）
func resolveVoteTransition(existing *entities.Vote, requested int8) voteTransition {
	if existing == nil {
		return voteTransition{Outcome: vo.VoteOutcomeCreated, NewValue: requested, ScoreDelta: requested}
	}
	if existing.Value == requested {
		return voteTransition{Outcome: vo.VoteOutcomeRemoved, ScoreDelta: -requested}
	}
	return voteTransition{Outcome: vo.VoteOutcomeUpdated, NewValue: requested, ScoreDelta: 2 * requested}
}

// VoteService 定义了投票账本的业务接口。
type VoteService interface {
	// CastVote 处理一次投票点击，按账本规则落成新建/改票/撤销之一。
	// - 目标必须恰好是帖子或评论之一，否则返回 entities.ErrInvalidVoteTarget (400)。
	// - 目标不存在返回 commonerrors.ErrRepoNotFound (404)。
	// - 并发下以唯一索引为准：插入撞索引时在同一事务内重读改票，不上抛冲突。
	CastVote(ctx context.Context, req *dto.CastVoteRequest, userID string) (*vo.CastVoteResultVO, error)
}

// voteService 是 VoteService 接口的具体实现。
type voteService struct {
	db          *gorm.DB
	voteRepo    mysql.VoteRepository
	postRepo    mysql.PostRepository
	commentRepo mysql.CommentRepository
	kafkaSvc    *producer.KafkaProducer
	logger      *core.ZapLogger
}

// NewVoteService 是 voteService 的构造函数。
func NewVoteService(
	db *gorm.DB,
	voteRepo mysql.VoteRepository,
	postRepo mysql.PostRepository,
	commentRepo mysql.CommentRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) VoteService {
	return &voteService{
		db:          db,
		voteRepo:    voteRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

// CastVote 实现投票落账。
func (s *voteService) CastVote(ctx context.Context, req *dto.CastVoteRequest, userID string) (*vo.CastVoteResultVO, error) {
	// 1. 目标互斥校验。value 的取值范围已由 binding 的 oneof 校验。
	target, err := entities.NewVoteTarget(req.PostID, req.CommentID)
	if err != nil {
		return nil, err
	}

	// 2. 校验目标存在。未找到时 ErrRepoNotFound 原样上抛。
	if target.IsPost() {
		if _, err := s.postRepo.GetPostByID(ctx, target.ID()); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.commentRepo.GetCommentByID(ctx, target.ID()); err != nil {
			return nil, err
		}
	}

	// 3. 在事务内落账。
	var result *vo.CastVoteResultVO
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.applyVote(ctx, tx, userID, target, req.Value)
		return txErr
	})
	if err != nil {
		s.logger.Error("投票落账事务失败",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Uint64("targetID", target.ID()),
			zap.Bool("isPost", target.IsPost()),
		)
		return nil, fmt.Errorf("投票失败: %w", err)
	}

	s.logger.Info("投票落账成功",
		zap.String("userID", userID),
		zap.Uint64("targetID", target.ID()),
		zap.Bool("isPost", target.IsPost()),
		zap.String("outcome", result.Outcome),
		zap.Int8("scoreDelta", result.ScoreDelta),
	)

	// 4. 异步发送投票变更事件。发送失败只记日志。
	go func() {
		bgCtx := context.Background()
		event := events.VoteChangedEvent{
			UserID:     userID,
			PostID:     req.PostID,
			CommentID:  req.CommentID,
			Outcome:    result.Outcome,
			Value:      req.Value,
			ScoreDelta: result.ScoreDelta,
		}
		if sendErr := s.kafkaSvc.SendVoteChangedEvent(bgCtx, event); sendErr != nil {
			s.logger.Error("发送投票变更事件失败", zap.Error(sendErr), zap.String("userID", userID))
		}
	}()

	return result, nil
}

// applyVote 在给定事务内执行一次账本状态迁移。
// 新建分支撞唯一索引说明并发请求抢先插入，重读现存行再按迁移规则处理一次，
// 不把冲突暴露给调用方。
func (s *voteService) applyVote(ctx context.Context, tx *gorm.DB, userID string, target entities.VoteTarget, requested int8) (*vo.CastVoteResultVO, error) {
	existing, err := s.voteRepo.FindByUserAndTarget(ctx, tx, userID, target)
	if err != nil {
		return nil, err
	}

	transition := resolveVoteTransition(existing, requested)
	switch transition.Outcome {
	case vo.VoteOutcomeCreated:
		postID, commentID := target.Row()
		vote := &entities.Vote{
			UserID:    userID,
			PostID:    postID,
			CommentID: commentID,
			Value:     transition.NewValue,
		}
		if createErr := s.voteRepo.CreateVote(ctx, tx, vote); createErr != nil {
			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return nil, createErr
			}
			// 并发插入撞索引：重读后现存行必然存在，走改票或撤销分支。
			s.logger.Warn("并发投票撞唯一索引，转为读取现存投票处理",
				zap.String("userID", userID),
				zap.Uint64("targetID", target.ID()),
			)
			existing, err = s.voteRepo.FindByUserAndTarget(ctx, tx, userID, target)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, fmt.Errorf("唯一索引冲突后未读到现存投票 (userID=%s, targetID=%d)", userID, target.ID())
			}
			return s.applyExistingTransition(ctx, tx, existing, resolveVoteTransition(existing, requested))
		}
		return &vo.CastVoteResultVO{
			Outcome:    vo.VoteOutcomeCreated,
			Vote:       vo.NewVoteVO(vote),
			ScoreDelta: transition.ScoreDelta,
		}, nil

	default:
		return s.applyExistingTransition(ctx, tx, existing, transition)
	}
}

// applyExistingTransition 对已存在的投票行执行改票或撤销。
func (s *voteService) applyExistingTransition(ctx context.Context, tx *gorm.DB, existing *entities.Vote, transition voteTransition) (*vo.CastVoteResultVO, error) {
	switch transition.Outcome {
	case vo.VoteOutcomeUpdated:
		if err := s.voteRepo.UpdateVoteValue(ctx, tx, existing.ID, transition.NewValue); err != nil {
			return nil, err
		}
		existing.Value = transition.NewValue
		return &vo.CastVoteResultVO{
			Outcome:    vo.VoteOutcomeUpdated,
			Vote:       vo.NewVoteVO(existing),
			ScoreDelta: transition.ScoreDelta,
		}, nil

	case vo.VoteOutcomeRemoved:
		if err := s.voteRepo.DeleteVote(ctx, tx, existing.ID); err != nil {
			return nil, err
		}
		return &vo.CastVoteResultVO{
			Outcome:    vo.VoteOutcomeRemoved,
			Vote:       nil,
			ScoreDelta: transition.ScoreDelta,
		}, nil

	default:
		return nil, fmt.Errorf("非法的账本迁移动作: %s", transition.Outcome)
	}
}
