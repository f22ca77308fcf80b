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
	"github.com/Xushengqwer/discussion_service/myErrors"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
	"github.com/Xushengqwer/discussion_service/repo/redis"
)

// PostService 定义了处理帖子核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理用户发布新帖子的业务流程。
	// - 先校验目标社区存在（不存在返回 commonerrors.ErrRepoNotFound），再落库。
	// - 成功创建后，异步触发 Kafka 事件通知下游服务。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, userID string, username string) (*vo.PostVO, error)

	// GetPostByID 获取单个帖子，净得分与当前用户投票值实时聚合。
	// - userID 为空串表示未登录，此时 UserVote 恒为 0。
	GetPostByID(ctx context.Context, postID uint64, userID string) (*vo.PostVO, error)

	// ListPosts 查询帖子列表并补全展示字段（社区名、净得分、用户投票值）。
	// - 排序、过滤与条数限制见 dto.ListPostsRequest。
	// - 全站 hot 流（无社区过滤）优先读热榜缓存快照，未命中或缓存不可用时
	//   回源数据库的简化 hot 排序。
	ListPosts(ctx context.Context, req *dto.ListPostsRequest, userID string) ([]*vo.PostVO, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db            *gorm.DB
	postRepo      mysql.PostRepository
	communityRepo mysql.CommunityRepository
	voteRepo      mysql.VoteRepository
	hotRankCache  redis.HotRankCache
	kafkaSvc      *producer.KafkaProducer
	logger        *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - 这种方式便于单元测试和组件替换。
// - hotRankCache 可以为 nil（如离线工具场景），此时 hot 流始终走数据库。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	communityRepo mysql.CommunityRepository,
	voteRepo mysql.VoteRepository,
	hotRankCache redis.HotRankCache,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:            db,
		postRepo:      postRepo,
		communityRepo: communityRepo,
		voteRepo:      voteRepo,
		hotRankCache:  hotRankCache,
		kafkaSvc:      kafkaSvc,
		logger:        logger,
	}
}

// CreatePost 实现帖子的创建。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, userID string, username string) (*vo.PostVO, error) {
	// 1. 校验目标社区存在。GetCommunityByID 在未找到时返回 commonerrors.ErrRepoNotFound，
	//    原样上抛给控制器映射为 404。
	community, err := s.communityRepo.GetCommunityByID(ctx, req.CommunityID)
	if err != nil {
		return nil, err
	}

	// 2. 落库。
	post := &entities.Post{
		Title:          req.Title,
		Content:        req.Content,
		CommunityID:    community.ID,
		AuthorID:       userID,
		AuthorUsername: username,
	}
	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		s.logger.Error("创建帖子落库失败", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("创建帖子失败: %w", err)
	}

	s.logger.Info("帖子创建成功",
		zap.Uint64("postID", post.ID),
		zap.Uint64("communityID", community.ID),
		zap.String("authorID", userID),
	)

	// 3. 异步发送帖子创建事件。事件发送失败只记日志，不影响主流程。
	go func() {
		bgCtx := context.Background()
		eventData := events.PostEventData{
			ID:             post.ID,
			Title:          post.Title,
			Content:        post.Content,
			CommunityID:    post.CommunityID,
			AuthorID:       post.AuthorID,
			AuthorUsername: post.AuthorUsername,
			CreatedAt:      post.CreatedAt.UnixMilli(),
		}
		if sendErr := s.kafkaSvc.SendPostCreatedEvent(bgCtx, eventData); sendErr != nil {
			s.logger.Error("发送帖子创建事件失败", zap.Error(sendErr), zap.Uint64("postID", post.ID))
		}
	}()

	postVO := vo.NewPostVO(post)
	postVO.CommunityName = community.Name
	return postVO, nil
}

// GetPostByID 实现单个帖子的查询与展示字段补全。
func (s *postService) GetPostByID(ctx context.Context, postID uint64, userID string) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	vos, err := s.buildPostVOs(ctx, []*entities.Post{post}, userID)
	if err != nil {
		return nil, err
	}
	return vos[0], nil
}

// ListPosts 实现帖子列表查询。
func (s *postService) ListPosts(ctx context.Context, req *dto.ListPostsRequest, userID string) ([]*vo.PostVO, error) {
	// sort 缺省为 hot，与首页默认排序一致。
	sort := req.Sort
	if sort == "" {
		sort = "hot"
	}

	// 全站 hot 流优先走热榜缓存快照；按社区过滤的 hot 查询不在快照覆盖范围内，
	// 与缓存未命中一样回源数据库。
	if sort == "hot" && req.CommunityID == nil && s.hotRankCache != nil {
		if posts, ok := s.listHotFromCache(ctx, req.Limit, userID); ok {
			return posts, nil
		}
	}

	query := &mysql.PostListQuery{
		CommunityID: req.CommunityID,
		Sort:        sort,
		Limit:       req.Limit,
	}
	posts, err := s.postRepo.ListPosts(ctx, query)
	if err != nil {
		s.logger.Error("查询帖子列表失败", zap.Error(err), zap.String("sort", sort))
		return nil, fmt.Errorf("查询帖子列表失败: %w", err)
	}

	return s.buildPostVOs(ctx, posts, userID)
}

// listHotFromCache 从热榜缓存读取全站 hot 列表，并实时覆盖当前用户的投票值。
// 第二个返回值为 false 表示缓存未命中或不可用，调用方回源数据库。
func (s *postService) listHotFromCache(ctx context.Context, limit int, userID string) ([]*vo.PostVO, bool) {
	if limit <= 0 {
		limit = mysql.DefaultListLimit
	}
	if limit > mysql.MaxListLimit {
		limit = mysql.MaxListLimit
	}

	posts, err := s.hotRankCache.GetTopPosts(ctx, limit)
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Info("热榜缓存未命中，帖子列表回源数据库")
		} else {
			s.logger.Error("读取热榜缓存失败，帖子列表回源数据库", zap.Error(err))
		}
		return nil, false
	}

	// 快照里没有按用户区分的投票值，这里实时覆盖。
	if userID != "" && len(posts) > 0 {
		postIDs := make([]uint64, 0, len(posts))
		for _, p := range posts {
			postIDs = append(postIDs, p.ID)
		}
		userVotes, voteErr := s.voteRepo.UserVotesForPosts(ctx, userID, postIDs)
		if voteErr != nil {
			s.logger.Error("覆盖热榜帖子的用户投票值失败，帖子列表回源数据库", zap.Error(voteErr))
			return nil, false
		}
		for _, p := range posts {
			p.UserVote = userVotes[p.ID]
		}
	}
	return posts, true
}

// buildPostVOs 将帖子实体批量转换为 VO，并补全社区名、净得分与当前用户投票值。
// 三类补全各用一次批量查询完成，列表长度不放大查询次数。
func (s *postService) buildPostVOs(ctx context.Context, posts []*entities.Post, userID string) ([]*vo.PostVO, error) {
	vos := make([]*vo.PostVO, 0, len(posts))
	if len(posts) == 0 {
		return vos, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	communityIDSet := make(map[uint64]struct{}, len(posts))
	communityIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, seen := communityIDSet[p.CommunityID]; !seen {
			communityIDSet[p.CommunityID] = struct{}{}
			communityIDs = append(communityIDs, p.CommunityID)
		}
	}

	communityNames, err := s.communityRepo.GetCommunityNamesByIDs(ctx, communityIDs)
	if err != nil {
		return nil, fmt.Errorf("批量查询社区名称失败: %w", err)
	}
	scores, err := s.voteRepo.ScoreForPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("批量聚合帖子净得分失败: %w", err)
	}
	userVotes := map[uint64]int8{}
	if userID != "" {
		userVotes, err = s.voteRepo.UserVotesForPosts(ctx, userID, postIDs)
		if err != nil {
			return nil, fmt.Errorf("批量查询用户帖子投票失败: %w", err)
		}
	}

	for _, p := range posts {
		postVO := vo.NewPostVO(p)
		postVO.CommunityName = communityNames[p.CommunityID]
		postVO.VoteScore = scores[p.ID]
		postVO.UserVote = userVotes[p.ID]
		vos = append(vos, postVO)
	}
	return vos, nil
}
