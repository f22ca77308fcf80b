// dependencies/redis.go
package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/discussion_service/config"
)

// InitRedis 初始化 Redis 客户端并做一次连通性检查
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redisConfig.address) 未配置")
	}

	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		options.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis Ping 失败", zap.Error(err), zap.String("address", cfg.Address))
		return nil, fmt.Errorf("无法连接到 Redis (%s): %w", cfg.Address, err)
	}

	logger.Info("成功连接到 Redis",
		zap.String("address", cfg.Address),
		zap.Int("db", cfg.DB),
	)
	return client, nil
}
