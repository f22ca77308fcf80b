package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/myErrors"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
)

// communityNamePattern 社区名称只允许字母、数字和下划线。
// 长度上下限（3-21）由 DTO 的 binding 标签负责，这里只管字符集。
var communityNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateCommunityName 校验社区名称的字符集与长度。
// 独立成包级函数，便于创建流程之外（如运营工具）复用同一套规则。
func ValidateCommunityName(name string) error {
	if len(name) < 3 || len(name) > 21 {
		return myErrors.ErrCommunityNameInvalid
	}
	if !communityNamePattern.MatchString(name) {
		return myErrors.ErrCommunityNameInvalid
	}
	return nil
}

// CommunityService 定义了处理社区业务逻辑的接口。
type CommunityService interface {
	// CreateCommunity 处理创建新社区的业务流程。
	// - 名称校验通过后落库；撞到唯一索引返回 myErrors.ErrCommunityNameTaken，
	//   控制器据此响应 409。
	CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest, userID string) (*vo.CommunityVO, error)

	// ListCommunities 返回全部社区，按名称升序。
	ListCommunities(ctx context.Context) ([]*vo.CommunityVO, error)
}

// communityService 是 CommunityService 接口的具体实现。
type communityService struct {
	db            *gorm.DB
	communityRepo mysql.CommunityRepository
	logger        *core.ZapLogger
}

// NewCommunityService 是 communityService 的构造函数。
func NewCommunityService(db *gorm.DB, communityRepo mysql.CommunityRepository, logger *core.ZapLogger) CommunityService {
	return &communityService{
		db:            db,
		communityRepo: communityRepo,
		logger:        logger,
	}
}

// CreateCommunity 实现社区的创建。
func (s *communityService) CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest, userID string) (*vo.CommunityVO, error) {
	// 1. 字符集校验（长度已由 binding 校验，这里再兜底一次）。
	if err := ValidateCommunityName(req.Name); err != nil {
		return nil, err
	}

	// 2. 落库。名称唯一性不做先查后插，直接依赖唯一索引，
	//    并发下 SELECT 再 INSERT 的窗口期照样会撞索引。
	community := &entities.Community{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := s.communityRepo.CreateCommunity(ctx, s.db, community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Info("创建社区失败：名称已被占用", zap.String("name", req.Name), zap.String("userID", userID))
			return nil, myErrors.ErrCommunityNameTaken
		}
		s.logger.Error("创建社区落库失败", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("创建社区失败: %w", err)
	}

	s.logger.Info("社区创建成功",
		zap.Uint64("communityID", community.ID),
		zap.String("name", community.Name),
		zap.String("createdBy", userID),
	)
	return vo.NewCommunityVO(community), nil
}

// ListCommunities 实现社区列表查询。
func (s *communityService) ListCommunities(ctx context.Context) ([]*vo.CommunityVO, error) {
	communities, err := s.communityRepo.ListCommunities(ctx)
	if err != nil {
		s.logger.Error("查询社区列表失败", zap.Error(err))
		return nil, fmt.Errorf("查询社区列表失败: %w", err)
	}
	return vo.NewCommunityVOs(communities), nil
}
