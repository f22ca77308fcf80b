package dto

// CreateCommentRequest 定义了发表评论的请求数据结构
// - ParentID 为空表示顶级评论；非空时服务层校验父评论存在
type CreateCommentRequest struct {
	Content        string  `json:"content" binding:"required,max=10000"`      // 评论内容，必填，最大10000字符
	PostID         uint64  `json:"postId" binding:"required"`                 // 所属帖子ID，必填
	ParentID       *uint64 `json:"parentId" binding:"omitempty"`              // 父评论ID，可选
	AuthorUsername string  `json:"authorUsername" binding:"omitempty,max=50"` // 作者用户名，冗余展示字段
}

// ListCommentsRequest 定义了评论列表的查询参数
type ListCommentsRequest struct {
	PostID uint64 `json:"postId" form:"postId" binding:"required"` // 帖子ID，必填
}
