package constant

// 服务自身标识与热榜任务相关常量 (导出)
const (
	// ServiceName 是服务在链路追踪和网关路由中的标识。
	ServiceName = "discussion-service"

	// ServiceVersion 是当前服务版本号，随发布更新。
	ServiceVersion = "v1.0.0"

	// HotPostsCacheCronSpec 是热榜重建定时任务的 cron 表达式（每 5 分钟执行一次）。
	HotPostsCacheCronSpec = "*/5 * * * *"

	// HotPostsCacheSize 是热榜保留的帖子数量上限。
	HotPostsCacheSize = 100

	// HotRankCandidateWindow 是热榜候选窗口的大小。
	// 每次重建只取最近这么多条帖子参与热度计算，避免全表聚合。
	HotRankCandidateWindow = 1000
)
