package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新的评论记录。
	CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error

	// GetCommentByID 根据单个 ID 检索评论。
	// - 用于创建回复时校验父评论存在；未找到时返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// ListCommentsByPostID 检索某帖子下的全部评论（平铺，不含层级）。
	// - 按创建时间降序（最新优先），评论树的层级关系由服务层在内存中重建。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// UpdateAuthorUsername 把指定作者的冗余用户名刷成新值，语义同 PostRepository。
	UpdateAuthorUsername(ctx context.Context, authorID string, username string) (int64, error)
}

// commentRepository 是 CommentRepository 接口针对 MySQL 的具体实现。
type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment 实现评论的数据库插入操作。
func (r *commentRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// GetCommentByID 实现根据单个 ID 获取评论。
func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取评论未找到", zap.Uint64("commentID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论数据库查询失败", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

// ListCommentsByPostID 实现某帖子下全部评论的平铺查询。
// 排序在取数边界完成（最新优先）；树构建器保持稳定，不重排兄弟节点。
func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").Order("id DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询帖子评论列表失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}
	return comments, nil
}

// UpdateAuthorUsername 实现冗余作者用户名的批量刷新。
func (r *commentRepository) UpdateAuthorUsername(ctx context.Context, authorID string, username string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("author_id = ?", authorID).
		Update("author_username", username)
	if result.Error != nil {
		r.logger.Error("刷新评论冗余作者用户名失败",
			zap.Error(result.Error),
			zap.String("authorID", authorID),
		)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
