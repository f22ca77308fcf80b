package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Community 社区实体
// - 使用场景: 帖子归属的社区（类似 subreddit），由已登录用户创建，创建后不可修改、不可删除
// - 表名: communities (GORM 默认使用结构体名复数形式)
type Community struct {
	entities.BaseModel // 嵌入公共 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 社区名称，全局唯一
	// - 类型: varchar(21)，业务层约束 3-21 个字符，仅允许字母、数字、下划线
	// - GORM 标签: uniqueIndex 在数据库层兜底唯一性约束（重复创建返回冲突错误）
	// - 注意: 格式校验在服务层完成（见 service.ValidateCommunityName），
	//   数据库唯一索引是并发创建时的最终裁决者
	Name string `gorm:"type:varchar(21);not null;uniqueIndex:idx_community_name"`

	// 社区描述，可选
	// - 类型: text，允许为空字符串
	Description string `gorm:"type:text"`

	// 创建者用户ID
	// - 类型: char(36)，用户ID为UUID格式，由网关透传，本服务不维护用户表
	CreatedBy string `gorm:"type:char(36);not null"`
}
