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

// CommunityRepository 定义了社区数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type CommunityRepository interface {
	// CreateCommunity 持久化一个新的社区记录。
	// - 名称撞到唯一索引时，GORM（开启 TranslateError 后）返回 gorm.ErrDuplicatedKey，
	//   由服务层映射为冲突错误；原有社区行不受影响。
	CreateCommunity(ctx context.Context, db *gorm.DB, community *entities.Community) error

	// ListCommunities 返回全部社区，按名称升序。
	// - 社区数量级很小，不做分页。
	ListCommunities(ctx context.Context) ([]*entities.Community, error)

	// GetCommunityByID 根据 ID 检索社区。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetCommunityByID(ctx context.Context, id uint64) (*entities.Community, error)

	// GetCommunityNamesByIDs 批量取社区名称，供帖子列表连表展示。
	// - 返回 map[communityID]name，缺失的 ID 不在 map 中。
	GetCommunityNamesByIDs(ctx context.Context, ids []uint64) (map[uint64]string, error)
}

// communityRepository 是 CommunityRepository 接口针对 MySQL 的具体实现。
type communityRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommunityRepository 是 communityRepository 的构造函数。
func NewCommunityRepository(db *gorm.DB, logger *core.ZapLogger) CommunityRepository {
	return &communityRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCommunity 实现社区的数据库插入操作。
func (r *communityRepository) CreateCommunity(ctx context.Context, db *gorm.DB, community *entities.Community) error {
	// 使用传入的 db 对象（可以是事务对象 tx）执行数据库操作。
	// 唯一索引冲突原样上抛，服务层负责识别 gorm.ErrDuplicatedKey。
	if err := db.WithContext(ctx).Create(community).Error; err != nil {
		return err
	}
	return nil
}

// ListCommunities 实现社区列表查询。
func (r *communityRepository) ListCommunities(ctx context.Context) ([]*entities.Community, error) {
	var communities []*entities.Community
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&communities).Error; err != nil {
		r.logger.Error("查询社区列表失败", zap.Error(err))
		return nil, err
	}
	return communities, nil
}

// GetCommunityByID 实现根据单个 ID 获取社区。
func (r *communityRepository) GetCommunityByID(ctx context.Context, id uint64) (*entities.Community, error) {
	var community entities.Community
	err := r.db.WithContext(ctx).First(&community, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取社区未找到", zap.Uint64("communityID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取社区数据库查询失败", zap.Uint64("communityID", id), zap.Error(err))
		return nil, err
	}
	return &community, nil
}

// GetCommunityNamesByIDs 实现批量取社区名称。
func (r *communityRepository) GetCommunityNamesByIDs(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	names := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	type row struct {
		ID   uint64
		Name string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Community{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量查询社区名称失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}
	for _, rec := range rows {
		names[rec.ID] = rec.Name
	}
	return names, nil
}
