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

// 列表查询的条数约束：缺省50，封顶100
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// PostListQuery 封装帖子列表的查询参数。
type PostListQuery struct {
	CommunityID *uint64 // 按社区过滤，nil 表示全站
	Sort        string  // hot / new / top，对应三种 ORDER BY 策略
	Limit       int     // 条数上限，<=0 时取 DefaultListLimit
}

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 这是帖子生命周期的起点；本系统的帖子创建后不提供编辑与删除操作。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索帖子。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 按排序策略检索帖子列表。
	// - new: 创建时间降序
	// - top: 净得分降序（LEFT JOIN votes 聚合），同分按时间降序
	// - hot: 简化热度 —— 净得分降序、创建时间降序；热榜缓存命中时服务层不会走到这里
	ListPosts(ctx context.Context, query *PostListQuery) ([]*entities.Post, error)

	// UpdateAuthorUsername 把指定作者的冗余用户名刷成新值。
	// - 由 Kafka 用户资料变更消费者调用；返回受影响行数用于日志观测。
	UpdateAuthorUsername(ctx context.Context, authorID string, username string) (int64, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// 使用传入的 db 对象（在事务中即为 tx）执行数据库操作。
	// GORM 会自动填充 BaseModel 中的 ID 和时间戳。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	return nil
}

// GetPostByID 实现根据单个 ID 获取帖子。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取帖子未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// ListPosts 实现按排序策略检索帖子列表。
func (r *postRepository) ListPosts(ctx context.Context, query *PostListQuery) ([]*entities.Post, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	db := r.db.WithContext(ctx).Model(&entities.Post{})
	if query.CommunityID != nil {
		db = db.Where("posts.community_id = ?", *query.CommunityID)
	}

	var posts []*entities.Post
	var err error

	switch query.Sort {
	case "new":
		err = db.Order("posts.created_at DESC").Order("posts.id DESC").
			Limit(limit).Find(&posts).Error
	default:
		// top 与 hot 共用同一条聚合查询：净得分降序，同分新帖优先。
		// hot 的完整热度（得分 + 时间衰减）由热榜缓存承载，这条 SQL 只是
		// 缓存未命中时的简化兜底。得分不落库，LEFT JOIN 投票账本现场聚合，
		// 保证排序依据与 scoreFor 语义一致，不存在可漂移的第二份真相。
		err = db.
			Select("posts.*, COALESCE(SUM(votes.value), 0) AS vote_score").
			Joins("LEFT JOIN votes ON votes.post_id = posts.id AND votes.deleted_at IS NULL").
			Group("posts.id").
			Order("vote_score DESC").Order("posts.created_at DESC").Order("posts.id DESC").
			Limit(limit).Find(&posts).Error
	}

	if err != nil {
		r.logger.Error("查询帖子列表失败",
			zap.Error(err),
			zap.String("sort", query.Sort),
			zap.Any("communityID", query.CommunityID),
		)
		return nil, err
	}
	return posts, nil
}

// UpdateAuthorUsername 实现冗余作者用户名的批量刷新。
func (r *postRepository) UpdateAuthorUsername(ctx context.Context, authorID string, username string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("author_id = ?", authorID).
		Update("author_username", username)
	if result.Error != nil {
		r.logger.Error("刷新帖子冗余作者用户名失败",
			zap.Error(result.Error),
			zap.String("authorID", authorID),
		)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
