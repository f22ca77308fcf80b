package dto

// CreatePostRequest 定义了创建帖子的请求数据结构
// - AuthorID 不在请求体里，从网关注入的上下文中获取；AuthorUsername 是展示用
//   冗余字段，由客户端随会话资料带上，后续靠用户资料变更事件保持同步
type CreatePostRequest struct {
	Title          string `json:"title" binding:"required,max=300"`          // 帖子标题，必填，最大300字符
	Content        string `json:"content" binding:"omitempty"`               // 正文内容，可选
	CommunityID    uint64 `json:"communityId" binding:"required"`            // 所属社区ID，必填，服务层校验其存在
	AuthorUsername string `json:"authorUsername" binding:"omitempty,max=50"` // 作者用户名，冗余展示字段
}

// ListPostsRequest 定义了帖子列表的查询参数
// - Sort 取值 hot/new/top，缺省为 hot（与 SPA 首页的默认排序一致）
type ListPostsRequest struct {
	CommunityID *uint64 `json:"communityId" form:"communityId"`                            // 按社区过滤，可选
	Sort        string  `json:"sort" form:"sort" binding:"omitempty,oneof=hot new top"`    // 排序方式，可选
	Limit       int     `json:"limit" form:"limit" binding:"omitempty,gt=0,max=100"`       // 返回条数上限，可选，默认50
}
