package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/discussion_service/constant"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/myErrors"
)

// HotPostEntry 是写入热榜的单条记录：帖子展示快照及其热度分。
type HotPostEntry struct {
	Post  *vo.PostVO
	Score float64
}

// HotRankCache 定义了热门帖子榜单在 Redis 中的读写接口。
// - 榜单由 ZSet (排名) 和 Hash (帖子快照) 两部分组成，必须整体替换以保证一致。
// - 快照中的净得分是重建时刻的值，不带按用户区分的 userVote。
type HotRankCache interface {
	// ReplaceHotList 用新一批热榜数据整体覆盖现有榜单。
	// - 采用临时 Key + RENAME 策略：读端任意时刻看到的都是一份完整榜单。
	// - entries 为空时清空榜单。
	ReplaceHotList(ctx context.Context, entries []HotPostEntry) error

	// GetTopPosts 按热度从高到低读取前 limit 条帖子快照。
	// - 榜单不存在（尚未构建或已被清空）时返回 myErrors.ErrCacheMiss，
	//   上层服务需要回源 MySQL。
	GetTopPosts(ctx context.Context, limit int) ([]*vo.PostVO, error)
}

// hotRankCacheImpl 是 HotRankCache 接口的 Redis 实现。
type hotRankCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewHotRankCache 是 hotRankCacheImpl 的构造函数。
func NewHotRankCache(redisClient *redis.Client, logger *core.ZapLogger) HotRankCache {
	return &hotRankCacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

// ReplaceHotList 实现榜单的整体替换。
func (c *hotRankCacheImpl) ReplaceHotList(ctx context.Context, entries []HotPostEntry) error {
	startTime := time.Now()
	rankKey := constant.HotPostsRankKey
	hashKey := constant.HotPostsHashKey

	// 榜单为空时直接删掉两个 Key，读端会回源数据库。
	if len(entries) == 0 {
		c.logger.Info("ReplaceHotList: 新榜单为空，清空现有热榜缓存。",
			zap.String("rankKey", rankKey),
			zap.String("hashKey", hashKey),
		)
		if err := c.redisClient.Del(ctx, rankKey, hashKey).Err(); err != nil {
			c.logger.Error("清空热榜缓存失败", zap.Error(err))
			return fmt.Errorf("清空热榜缓存失败: %w", err)
		}
		return nil
	}

	suffix := "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	tempRankKey := rankKey + suffix
	tempHashKey := hashKey + suffix

	members := make([]redis.Z, 0, len(entries))
	snapshots := make(map[string]interface{}, len(entries))
	marshalErrors := 0
	for _, entry := range entries {
		if entry.Post == nil {
			continue
		}
		idStr := strconv.FormatUint(entry.Post.ID, 10)
		jsonData, jsonErr := json.Marshal(entry.Post)
		if jsonErr != nil {
			c.logger.Error("序列化热榜帖子快照失败，跳过该帖子", zap.Error(jsonErr), zap.Uint64("postID", entry.Post.ID))
			marshalErrors++
			continue
		}
		members = append(members, redis.Z{Score: entry.Score, Member: idStr})
		snapshots[idStr] = jsonData
	}

	if len(members) == 0 {
		c.logger.Error("ReplaceHotList: 未能准备任何有效的榜单数据（全部序列化失败），现有缓存将保留。",
			zap.Int("entryCount", len(entries)),
			zap.Int("marshalErrors", marshalErrors),
		)
		return errors.New("未能准备有效的热榜数据，操作中止")
	}

	// 先把完整榜单写进临时 Key，再原子地 RENAME 到正式 Key。
	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempRankKey, tempHashKey)
	pipe.ZAdd(ctx, tempRankKey, members...)
	pipe.HMSet(ctx, tempHashKey, snapshots)
	pipe.Rename(ctx, tempRankKey, rankKey)
	pipe.Rename(ctx, tempHashKey, hashKey)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("执行 Redis Pipeline 替换热榜失败，现有缓存可能保留旧数据。",
			zap.Error(err),
			zap.String("tempRankKey", tempRankKey),
			zap.String("tempHashKey", tempHashKey),
		)
		c.redisClient.Del(ctx, tempRankKey, tempHashKey)
		return fmt.Errorf("替换热榜缓存失败: %w", err)
	}

	c.logger.Info("成功整体替换热榜缓存",
		zap.Int("entryCount", len(members)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// GetTopPosts 实现榜单的排序读取。
func (c *hotRankCacheImpl) GetTopPosts(ctx context.Context, limit int) ([]*vo.PostVO, error) {
	if limit <= 0 {
		return []*vo.PostVO{}, nil
	}
	rankKey := constant.HotPostsRankKey
	hashKey := constant.HotPostsHashKey

	// 1. 从 ZSet 取排名前 limit 的帖子 ID。
	idStrs, err := c.redisClient.ZRevRange(ctx, rankKey, 0, int64(limit-1)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从热榜 ZSet 读取排名失败", zap.Error(err), zap.String("key", rankKey))
		return nil, fmt.Errorf("读取热榜排名 (key: %s) 失败: %w", rankKey, err)
	}
	// ZREVRANGE 对不存在的 Key 返回空列表而不是 redis.Nil，这里统一当作未命中处理。
	if len(idStrs) == 0 {
		return nil, myErrors.ErrCacheMiss
	}

	// 2. 按排名顺序从 Hash 批量取帖子快照。
	values, err := c.redisClient.HMGet(ctx, hashKey, idStrs...).Result()
	if err != nil {
		c.logger.Error("从热榜 Hash 批量读取帖子快照失败 (HMGET 执行错误)",
			zap.Error(err),
			zap.String("hashKey", hashKey),
			zap.Int("idCount", len(idStrs)),
		)
		return nil, fmt.Errorf("读取热榜帖子快照 (key: %s) 失败: %w", hashKey, err)
	}

	// 3. 反序列化，保持 ZSet 给出的顺序；个别损坏或缺失的条目跳过。
	posts := make([]*vo.PostVO, 0, len(values))
	missCount := 0
	unmarshalErrorCount := 0
	for i, val := range values {
		if val == nil {
			missCount++
			c.logger.Debug("热榜 Hash 中缺少帖子快照，跳过", zap.String("field", idStrs[i]))
			continue
		}
		jsonStr, ok := val.(string)
		if !ok {
			unmarshalErrorCount++
			c.logger.Error("热榜 Hash 中的值类型不是预期的字符串，跳过该帖子",
				zap.String("field", idStrs[i]),
				zap.Any("valueType", fmt.Sprintf("%T", val)),
			)
			continue
		}
		var post vo.PostVO
		if jsonErr := json.Unmarshal([]byte(jsonStr), &post); jsonErr != nil {
			unmarshalErrorCount++
			c.logger.Error("反序列化热榜帖子快照失败，跳过该帖子",
				zap.Error(jsonErr),
				zap.String("field", idStrs[i]),
			)
			continue
		}
		posts = append(posts, &post)
	}

	c.logger.Debug("读取热榜完成",
		zap.Int("requested", limit),
		zap.Int("returned", len(posts)),
		zap.Int("hashMiss", missCount),
		zap.Int("unmarshalErrors", unmarshalErrorCount),
	)
	return posts, nil
}
