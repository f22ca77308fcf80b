package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Post 帖子实体
// - 使用场景: 社区下的帖子，SPA 列表页与详情页的核心数据
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 注意: 帖子的净得分（voteScore）不落库，始终由 votes 表实时聚合得出；
//   热榜缓存只是该聚合结果的非权威投影（见 repo/redis 的说明）
type Post struct {
	entities.BaseModel // 嵌入公共 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 标题，必填，最大长度300个字符
	// - 类型: varchar(300)
	Title string `gorm:"type:varchar(300);not null"`

	// 正文内容，可选，支持多行文本
	// - 类型: text，存储时保留换行符，前端按换行符渲染
	Content string `gorm:"type:text"`

	// 所属社区ID，外键，必填
	// - GORM 标签: index 加速按社区过滤列表；创建帖子前服务层会校验社区存在
	CommunityID uint64 `gorm:"type:bigint;not null;index"`

	// 作者用户ID
	// - 类型: char(36)，用户ID为UUID格式，由网关透传，本服务不维护用户表
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名
	// - 类型: varchar(50)
	// - 注意: 该字段为冗余字段，数据来源于用户服务，变更时通过 Kafka 消息异步同步
	//   （见 mq/consumer 中的用户资料变更处理器），列表页直接展示，避免跨服务调用
	AuthorUsername string `gorm:"type:varchar(50);not null"`
}
