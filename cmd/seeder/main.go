package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/discussion_service/config"
	"github.com/Xushengqwer/discussion_service/dependencies"
	"github.com/Xushengqwer/discussion_service/mq/producer"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
	"github.com/Xushengqwer/discussion_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var configFile string
	var numCommunities, numPosts, commentsPerPost, votesPerPost int
	var waitSeconds int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numCommunities, "communities", 5, "要生成的社区数量 (默认: 5)")
	flag.IntVar(&numPosts, "n", 50, "要生成的帖子数量 (默认: 50)")
	flag.IntVar(&commentsPerPost, "comments", 10, "每个帖子的评论数上限 (默认: 10)")
	flag.IntVar(&votesPerPost, "votes", 15, "每个帖子的投票数上限 (默认: 15)")
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个社区、%d 条测试帖子...\n", absConfigFile, numCommunities, numPosts)

	if numCommunities <= 0 || numPosts <= 0 {
		fmt.Println("错误: 生成的社区和帖子数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.DiscussionConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 ---
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	logger.Info("Kafka 生产者已初始化 (Seeder)")

	// --- 5. 初始化 Repositories ---
	communityRepo := mysql.NewCommunityRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	commentRepo := mysql.NewCommentRepository(db, logger)
	voteRepo := mysql.NewVoteRepository(db, logger)

	// --- 6. 初始化 Services ---
	communitySvc := service.NewCommunityService(db, communityRepo, logger)
	// Seeder 只写不读列表，不接热榜缓存。
	postSvc := service.NewPostService(db, postRepo, communityRepo, voteRepo, nil, kafkaProducer, logger)
	commentSvc := service.NewCommentService(db, commentRepo, postRepo, voteRepo, kafkaProducer, logger)
	voteSvc := service.NewVoteService(db, voteRepo, postRepo, commentRepo, kafkaProducer, logger)
	logger.Info("服务层已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	Seed(ctx, communitySvc, postSvc, commentSvc, voteSvc, logger, SeedOptions{
		NumCommunities:  numCommunities,
		NumPosts:        numPosts,
		CommentsPerPost: commentsPerPost,
		VotesPerPost:    votesPerPost,
	})
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", time.Since(startTime)))

	// --- 8. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	if err := kafkaProducer.Close(); err != nil {
		logger.Warn("关闭 Kafka 生产者失败 (Seeder)", zap.Error(err))
	}
	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
}
