package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Comment 评论实体
// - 使用场景: 帖子下的评论，支持多级回复（自引用形成每个帖子一片森林）
// - 表名: comments (GORM 默认使用结构体名复数形式)
type Comment struct {
	entities.BaseModel // 嵌入公共 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 评论内容，必填，最大长度10000个字符
	// - 类型: text
	Content string `gorm:"type:text;not null"`

	// 所属帖子ID，外键，必填
	// - GORM 标签: index，查询某帖子的全部评论是最高频的访问路径
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 作者用户ID
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名，冗余字段，同 Post.AuthorUsername，经 Kafka 异步同步
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 父评论ID，可为 NULL
	// - NULL 表示顶级评论；非 NULL 时引用同表的另一条评论
	// - 注意: 创建时服务层只校验父评论存在，不校验父评论与本评论同属一个帖子，
	//   这是一个已知并被刻意保留的缺口；树构建阶段会把跨帖子的悬挂引用静默丢弃
	//   （见 service 中的评论树构建说明）
	ParentID *uint64 `gorm:"type:bigint;index"`
}
