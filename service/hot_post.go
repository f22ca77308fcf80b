package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/discussion_service/constant"
	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/models/vo"
)

// HotPostService 定义了热门帖子榜单的读取接口。
// 榜单数据由定时任务预计算进 Redis，读路径优先走缓存，未命中回源数据库。
type HotPostService interface {
	// GetHotPosts 按热度从高到低返回前 limit 条帖子。
	// - 缓存命中时返回的是快照数据（净得分是重建时刻的值），但当前用户的
	//   投票值仍实时补全。
	// - 缓存未命中时退化为数据库 hot 排序查询。
	GetHotPosts(ctx context.Context, limit int, userID string) ([]*vo.PostVO, error)
}

// hotPostService 是 HotPostService 接口的具体实现。
// 缓存优先、回源兜底的读取策略由 PostService 的全站 hot 流统一承载，
// 这里只负责榜单接口自己的条数缺省值。
type hotPostService struct {
	postService PostService
	logger      *core.ZapLogger
}

// NewHotPostService 是 hotPostService 的构造函数。
func NewHotPostService(postService PostService, logger *core.ZapLogger) HotPostService {
	return &hotPostService{
		postService: postService,
		logger:      logger,
	}
}

// GetHotPosts 实现热榜读取。
func (s *hotPostService) GetHotPosts(ctx context.Context, limit int, userID string) ([]*vo.PostVO, error) {
	// 榜单接口的缺省条数与榜单大小一致，而非普通列表的缺省 50。
	if limit <= 0 || limit > constant.HotPostsCacheSize {
		limit = constant.HotPostsCacheSize
	}
	req := &dto.ListPostsRequest{Sort: "hot", Limit: limit}
	return s.postService.ListPosts(ctx, req, userID)
}
