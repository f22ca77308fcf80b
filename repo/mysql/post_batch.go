// File: repo/mysql/post_batch.go
package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// PostBatchOperationsRepository defines the interface for batch database operations,
// primarily supporting tasks like populating the hot posts cache.
type PostBatchOperationsRepository interface {
	// GetPostsByIDs 根据 ID 列表批量检索帖子 (entities.Post)。
	// - 主要服务于需要一次性加载多个已知 ID 帖子的场景，例如填充 Redis 缓存。
	// - 使用 "WHERE id IN (...)" 进行查询。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)

	// ListRecentPostIDs 按创建时间倒序取最近 limit 条帖子的 ID。
	// 热榜只在这个候选窗口内计算，避免每次重建都全表聚合。
	ListRecentPostIDs(ctx context.Context, limit int) ([]uint64, error)
}

type postBatchOperationsRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostBatchOperationsRepository creates a new instance of PostBatchOperationsRepository.
func NewPostBatchOperationsRepository(db *gorm.DB, logger *core.ZapLogger) PostBatchOperationsRepository {
	return &postBatchOperationsRepository{db: db, logger: logger}
}

// GetPostsByIDs 实现根据 ID 列表批量获取帖子 (entities.Post)。
func (r *postBatchOperationsRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	var posts []*entities.Post

	if len(ids) == 0 {
		r.logger.Debug("GetPostsByIDs: ids 为空，返回空列表。")
		return posts, nil
	}
	r.logger.Debug("GetPostsByIDs: 开始查询帖子。", zap.Int("id数量", len(ids)))

	// GORM 的 Find 方法会自动处理软删除（如果模型中有 DeletedAt），并只返回存在的记录。
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		r.logger.Error("GetPostsByIDs: 查询帖子失败。", zap.Error(err))
		return nil, err
	}

	r.logger.Debug("GetPostsByIDs: 查询帖子成功。", zap.Int("找到数量", len(posts)))
	return posts, nil
}

// ListRecentPostIDs 实现热榜候选窗口的 ID 查询。
func (r *postBatchOperationsRepository) ListRecentPostIDs(ctx context.Context, limit int) ([]uint64, error) {
	if limit <= 0 {
		return nil, nil
	}

	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("ListRecentPostIDs: 查询最近帖子 ID 失败。", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}
	return ids, nil
}
