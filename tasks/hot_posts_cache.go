// File: tasks/hot_posts_cache.go
package tasks

import (
	"context"
	"sort"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/constant"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
	"github.com/Xushengqwer/discussion_service/repo/redis"
	"github.com/Xushengqwer/discussion_service/service"
)

// HotPostsCacheTask 负责定时重建 Redis 中的热门帖子榜单。
// 每次执行从 MySQL 取最近的候选帖子，聚合净得分、计算热度分，
// 取前 N 条整体替换 Redis 中的 ZSet + Hash。
type HotPostsCacheTask struct {
	postBatch     mysql.PostBatchOperationsRepository
	voteRepo      mysql.VoteRepository
	communityRepo mysql.CommunityRepository
	hotRankCache  redis.HotRankCache
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewHotPostsCacheTask 初始化并启动热门帖子榜单的定时任务。
func NewHotPostsCacheTask(
	postBatch mysql.PostBatchOperationsRepository,
	voteRepo mysql.VoteRepository,
	communityRepo mysql.CommunityRepository,
	hotRankCache redis.HotRankCache,
	logger *core.ZapLogger,
) *HotPostsCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &HotPostsCacheTask{
		postBatch:     postBatch,
		voteRepo:      voteRepo,
		communityRepo: communityRepo,
		hotRankCache:  hotRankCache,
		cron:          cronV3,
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotPostsCacheTask) startCronJob() {
	schedule := constant.HotPostsCacheCronSpec
	t.logger.Info("准备启动热门帖子榜单刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门帖子榜单刷新任务开始执行...")
		startTime := time.Now()
		// 为单次任务执行设置超时，防止任务卡死占住下一轮调度。
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := t.RebuildHotRank(ctx); err != nil {
			t.logger.Error("热门帖子榜单刷新任务执行失败", zap.Error(err))
		}

		duration := time.Since(startTime)
		t.logger.Info("热门帖子榜单刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门帖子榜单刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门帖子榜单刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// RebuildHotRank 执行一次完整的榜单重建。
// 独立导出便于启动时预热一次，不必等第一个调度周期。
func (t *HotPostsCacheTask) RebuildHotRank(ctx context.Context) error {
	// 步骤 1: 取候选窗口内的帖子。
	candidateIDs, err := t.postBatch.ListRecentPostIDs(ctx, constant.HotRankCandidateWindow)
	if err != nil {
		return err
	}
	if len(candidateIDs) == 0 {
		t.logger.Info("候选窗口内没有帖子，清空热榜。")
		return t.hotRankCache.ReplaceHotList(ctx, nil)
	}

	posts, err := t.postBatch.GetPostsByIDs(ctx, candidateIDs)
	if err != nil {
		return err
	}

	// 步骤 2: 批量聚合净得分与社区名。
	scores, err := t.voteRepo.ScoreForPosts(ctx, candidateIDs)
	if err != nil {
		return err
	}
	communityIDSet := make(map[uint64]struct{}, len(posts))
	communityIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		if _, seen := communityIDSet[p.CommunityID]; !seen {
			communityIDSet[p.CommunityID] = struct{}{}
			communityIDs = append(communityIDs, p.CommunityID)
		}
	}
	communityNames, err := t.communityRepo.GetCommunityNamesByIDs(ctx, communityIDs)
	if err != nil {
		return err
	}

	// 步骤 3: 计算热度分，按分数倒序取前 N 条。
	now := time.Now()
	entries := make([]redis.HotPostEntry, 0, len(posts))
	for _, p := range posts {
		postVO := vo.NewPostVO(p)
		postVO.CommunityName = communityNames[p.CommunityID]
		postVO.VoteScore = scores[p.ID]
		entries = append(entries, redis.HotPostEntry{
			Post:  postVO,
			Score: service.HotScore(postVO.VoteScore, p.CreatedAt, now),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > constant.HotPostsCacheSize {
		entries = entries[:constant.HotPostsCacheSize]
	}

	// 步骤 4: 整体替换 Redis 榜单。
	if err := t.hotRankCache.ReplaceHotList(ctx, entries); err != nil {
		return err
	}

	t.logger.Info("热门帖子榜单重建完成",
		zap.Int("candidates", len(posts)),
		zap.Int("ranked", len(entries)),
	)
	return nil
}

// Stop 优雅地停止 cron 调度器。
func (t *HotPostsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门帖子榜单刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门帖子榜单刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
