package constant

// Redis Key 相关常量 (导出)
const (
	// HotPostsRankKey 是热门帖子榜单的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是帖子 ID (postID)，分数是热度分。
	// 热度分由定时任务根据投票净得分和发帖时间计算后整榜覆盖写入。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="123", Score=7.5; Member="456", Score=3.2
	HotPostsRankKey = "hot_post_rank"

	// HotPostsHashKey 是热门帖子快照的 Hash Key 名称。
	// Field 是字符串形式的帖子 ID，Value 是该帖子展示对象的 JSON 序列化结果
	// (已带社区名和净得分快照，不带按用户区分的 userVote)。
	// 与 HotPostsRankKey 由同一个定时任务一起整体替换，保证两者一致。
	// Redis 类型: Hash
	HotPostsHashKey = "hot_posts"
)
