package main // <--- 确保这里是 package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/service"
)

// fakeUser 是一个虚拟用户，AuthorID 由网关侧的用户体系分配，这里用 uuid 模拟
type fakeUser struct {
	ID       string
	Username string
}

// SeedOptions 控制各类数据的生成规模
type SeedOptions struct {
	NumCommunities  int // 社区数量
	NumPosts        int // 帖子数量
	CommentsPerPost int // 每个帖子的评论数上限（随机 0..N）
	VotesPerPost    int // 每个帖子的投票数上限（随机 0..N）
}

// Seed 通过服务层填充测试数据：社区 -> 帖子 -> 评论树 -> 投票。
// 走服务层而不是直写数据库，这样唯一索引、异或约束和 Kafka 事件都会被真实地触发一遍。
func Seed(
	ctx context.Context,
	communitySvc service.CommunityService,
	postSvc service.PostService,
	commentSvc service.CommentService,
	voteSvc service.VoteService,
	logger *core.ZapLogger,
	opts SeedOptions,
) {
	logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("社区数", opts.NumCommunities),
		zap.Int("帖子数", opts.NumPosts))

	// 预生成一批虚拟用户，投票和评论从中随机取，保证同一用户对同一目标只有一票
	users := make([]fakeUser, 0, 30)
	for i := 0; i < 30; i++ {
		users = append(users, fakeUser{
			ID:       uuid.New().String(),
			Username: gofakeit.Username(),
		})
	}
	pickUser := func() fakeUser { return users[gofakeit.Number(0, len(users)-1)] }

	// --- 1. 创建社区（串行，数量少且名称要收集） ---
	communityIDs := make([]uint64, 0, opts.NumCommunities)
	for i := 0; i < opts.NumCommunities; i++ {
		creator := pickUser()
		req := &dto.CreateCommunityRequest{
			Name:        fakeCommunityName(),
			Description: gofakeit.Sentence(gofakeit.Number(5, 12)),
		}
		resp, err := communitySvc.CreateCommunity(ctx, req, creator.ID)
		if err != nil {
			logger.Warn("创建社区失败，跳过", zap.Error(err), zap.String("name", req.Name))
			continue
		}
		communityIDs = append(communityIDs, resp.ID)
		logger.Info("成功创建社区", zap.Uint64("community_id", resp.ID), zap.String("name", resp.Name))
	}
	if len(communityIDs) == 0 {
		logger.Error("没有任何社区创建成功，终止数据填充")
		return
	}

	// --- 2. 并发创建帖子及其评论/投票 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < opts.NumPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			author := pickUser()
			createReq := &dto.CreatePostRequest{
				Title:          gofakeit.Sentence(gofakeit.Number(5, 15)),
				Content:        gofakeit.Paragraph(2, 4, 20, "\n\n"),
				CommunityID:    communityIDs[gofakeit.Number(0, len(communityIDs)-1)],
				AuthorUsername: author.Username,
			}

			resp, err := postSvc.CreatePost(ctx, createReq, author.ID, author.Username)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, opts.NumPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author_id", author.ID))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, opts.NumPosts),
				zap.Uint64("post_id", resp.ID),
				zap.String("title", resp.Title))

			commentIDs := seedComments(ctx, commentSvc, logger, resp.ID, pickUser, gofakeit.Number(0, opts.CommentsPerPost))
			seedVotes(ctx, voteSvc, logger, resp.ID, commentIDs, users, gofakeit.Number(0, opts.VotesPerPost))
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// seedComments 为帖子生成评论，约三分之一挂到已有评论下形成回复树
func seedComments(
	ctx context.Context,
	commentSvc service.CommentService,
	logger *core.ZapLogger,
	postID uint64,
	pickUser func() fakeUser,
	count int,
) []uint64 {
	ids := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		author := pickUser()
		req := &dto.CreateCommentRequest{
			Content:        gofakeit.Sentence(gofakeit.Number(5, 25)),
			PostID:         postID,
			AuthorUsername: author.Username,
		}
		if len(ids) > 0 && gofakeit.Number(1, 3) == 1 {
			parent := ids[gofakeit.Number(0, len(ids)-1)]
			req.ParentID = &parent
		}
		resp, err := commentSvc.CreateComment(ctx, req, author.ID, author.Username)
		if err != nil {
			logger.Warn("创建评论失败，跳过", zap.Error(err), zap.Uint64("post_id", postID))
			continue
		}
		ids = append(ids, resp.ID)
	}
	return ids
}

// seedVotes 让随机用户对帖子和评论投票，每人每目标最多取一次，
// 避免命中服务层的“同值撤销”语义导致票数被抵消
func seedVotes(
	ctx context.Context,
	voteSvc service.VoteService,
	logger *core.ZapLogger,
	postID uint64,
	commentIDs []uint64,
	users []fakeUser,
	count int,
) {
	if count > len(users) {
		count = len(users)
	}
	// 打乱后取前 count 个用户，保证本轮内每个用户最多投一票
	indexes := make([]int, len(users))
	for i := range indexes {
		indexes[i] = i
	}
	gofakeit.ShuffleInts(indexes)

	for i := 0; i < count; i++ {
		voter := users[indexes[i]]
		value := int8(1)
		if gofakeit.Number(1, 4) == 1 {
			value = -1 // 约四分之一是反对票
		}

		req := &dto.CastVoteRequest{Value: value}
		if len(commentIDs) > 0 && gofakeit.Number(1, 2) == 1 {
			target := commentIDs[gofakeit.Number(0, len(commentIDs)-1)]
			req.CommentID = &target
		} else {
			target := postID
			req.PostID = &target
		}

		if _, err := voteSvc.CastVote(ctx, req, voter.ID); err != nil {
			logger.Warn("投票失败，跳过", zap.Error(err), zap.Uint64("post_id", postID))
		}
	}
}

// fakeCommunityName 生成符合命名规则（3-21字符，仅字母数字下划线）的社区名，
// 追加随机数字后缀降低与已有社区撞名的概率
func fakeCommunityName() string {
	word := strings.ToLower(gofakeit.Word())
	name := fmt.Sprintf("%s_%d", word, gofakeit.Number(10, 9999))
	if len(name) > 21 {
		name = name[:21]
	}
	if len(name) < 3 {
		name = name + "_hub"
	}
	return name
}
