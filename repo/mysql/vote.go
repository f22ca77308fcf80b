package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// VoteRepository 定义了投票账本在 MySQL 中的持久化操作接口。
// 账本是净得分的唯一权威：所有 Score/UserVote 查询都直接聚合存活的投票行，
// 不读任何冗余计数器（本服务根本没有冗余计数器）。
type VoteRepository interface {
	// FindByUserAndTarget 查找用户在指定目标上的现存投票。
	// - 未找到时返回 (nil, nil)，调用方据此走“新建”分支；
	//   注意在并发场景下该结果只是参考，最终以唯一索引为准。
	FindByUserAndTarget(ctx context.Context, db *gorm.DB, userID string, target entities.VoteTarget) (*entities.Vote, error)

	// CreateVote 插入一条新的投票行。
	// - 撞到唯一索引时返回 gorm.ErrDuplicatedKey（TranslateError 已开启），
	//   调用方必须把它当作“该用户已有一票”的信号转为改票，绝不能上抛为内部错误。
	CreateVote(ctx context.Context, db *gorm.DB, vote *entities.Vote) error

	// UpdateVoteValue 原地改票（+1 <-> -1）。
	UpdateVoteValue(ctx context.Context, db *gorm.DB, voteID uint64, value int8) error

	// DeleteVote 撤销投票。
	// - 必须物理删除（Unscoped）：软删除的行仍占据唯一索引的位置，
	//   会让用户撤票后再也投不出去。
	DeleteVote(ctx context.Context, db *gorm.DB, voteID uint64) error

	// ScoreForPosts 批量聚合帖子净得分，返回 map[postID]score，没有投票的帖子不在 map 中。
	ScoreForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	// ScoreForComments 批量聚合评论净得分。
	ScoreForComments(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error)

	// UserVotesForPosts 批量查某用户在一组帖子上的投票值，返回 map[postID]value。
	UserVotesForPosts(ctx context.Context, userID string, postIDs []uint64) (map[uint64]int8, error)

	// UserVotesForComments 批量查某用户在一组评论上的投票值。
	UserVotesForComments(ctx context.Context, userID string, commentIDs []uint64) (map[uint64]int8, error)
}

// voteRepository 是 VoteRepository 接口针对 MySQL 的具体实现。
type voteRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewVoteRepository 是 voteRepository 的构造函数。
func NewVoteRepository(db *gorm.DB, logger *core.ZapLogger) VoteRepository {
	return &voteRepository{
		db:     db,
		logger: logger,
	}
}

// targetColumn 返回目标类别对应的外键列名。
func targetColumn(target entities.VoteTarget) string {
	if target.IsPost() {
		return "post_id"
	}
	return "comment_id"
}

// FindByUserAndTarget 实现现存投票的查找。
func (r *voteRepository) FindByUserAndTarget(ctx context.Context, db *gorm.DB, userID string, target entities.VoteTarget) (*entities.Vote, error) {
	var vote entities.Vote
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(targetColumn(target)+" = ?", target.ID()).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("查找现存投票失败",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Uint64("targetID", target.ID()),
		)
		return nil, err
	}
	return &vote, nil
}

// CreateVote 实现投票行的插入。唯一索引冲突原样上抛（gorm.ErrDuplicatedKey）。
func (r *voteRepository) CreateVote(ctx context.Context, db *gorm.DB, vote *entities.Vote) error {
	return db.WithContext(ctx).Create(vote).Error
}

// UpdateVoteValue 实现原地改票。
func (r *voteRepository) UpdateVoteValue(ctx context.Context, db *gorm.DB, voteID uint64, value int8) error {
	result := db.WithContext(ctx).
		Model(&entities.Vote{}).
		Where("id = ?", voteID).
		Update("value", value)
	if result.Error != nil {
		r.logger.Error("改票失败", zap.Error(result.Error), zap.Uint64("voteID", voteID))
		return result.Error
	}
	return nil
}

// DeleteVote 实现投票的物理删除。
func (r *voteRepository) DeleteVote(ctx context.Context, db *gorm.DB, voteID uint64) error {
	result := db.WithContext(ctx).Unscoped().Delete(&entities.Vote{}, voteID)
	if result.Error != nil {
		r.logger.Error("撤销投票失败", zap.Error(result.Error), zap.Uint64("voteID", voteID))
		return result.Error
	}
	return nil
}

// sumByColumn 对指定外键列做 GROUP BY SUM 聚合。
func (r *voteRepository) sumByColumn(ctx context.Context, column string, ids []uint64) (map[uint64]int64, error) {
	scores := make(map[uint64]int64, len(ids))
	if len(ids) == 0 {
		return scores, nil
	}

	type row struct {
		TargetID uint64
		Score    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Vote{}).
		Select(column+" AS target_id, SUM(value) AS score").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("聚合净得分失败", zap.Error(err), zap.String("column", column), zap.Int("idCount", len(ids)))
		return nil, err
	}
	for _, rec := range rows {
		scores[rec.TargetID] = rec.Score
	}
	return scores, nil
}

// userVotesByColumn 查某用户在一组目标上的投票值。
func (r *voteRepository) userVotesByColumn(ctx context.Context, userID string, column string, ids []uint64) (map[uint64]int8, error) {
	votes := make(map[uint64]int8, len(ids))
	if len(ids) == 0 || userID == "" {
		return votes, nil
	}

	type row struct {
		TargetID uint64
		Value    int8
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Vote{}).
		Select(column+" AS target_id, value").
		Where("user_id = ?", userID).
		Where(column+" IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("查询用户投票值失败", zap.Error(err), zap.String("userID", userID), zap.String("column", column))
		return nil, err
	}
	for _, rec := range rows {
		votes[rec.TargetID] = rec.Value
	}
	return votes, nil
}

// ScoreForPosts 实现帖子净得分的批量聚合。
func (r *voteRepository) ScoreForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return r.sumByColumn(ctx, "post_id", postIDs)
}

// ScoreForComments 实现评论净得分的批量聚合。
func (r *voteRepository) ScoreForComments(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error) {
	return r.sumByColumn(ctx, "comment_id", commentIDs)
}

// UserVotesForPosts 实现用户帖子投票值的批量查询。
func (r *voteRepository) UserVotesForPosts(ctx context.Context, userID string, postIDs []uint64) (map[uint64]int8, error) {
	return r.userVotesByColumn(ctx, userID, "post_id", postIDs)
}

// UserVotesForComments 实现用户评论投票值的批量查询。
func (r *voteRepository) UserVotesForComments(ctx context.Context, userID string, commentIDs []uint64) (map[uint64]int8, error) {
	return r.userVotesByColumn(ctx, userID, "comment_id", commentIDs)
}
