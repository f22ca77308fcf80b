package dto

// CastVoteRequest 定义了投票的请求数据结构
// - PostID 与 CommentID 必须恰好提供一个（互斥校验在服务层通过 entities.NewVoteTarget 完成，
//   binding 标签无法表达跨字段的异或关系）
// - Value 只允许 1 或 -1
type CastVoteRequest struct {
	PostID    *uint64 `json:"postId" binding:"omitempty"`             // 目标帖子ID，与 commentId 互斥
	CommentID *uint64 `json:"commentId" binding:"omitempty"`          // 目标评论ID，与 postId 互斥
	Value     int8    `json:"value" binding:"required,oneof=1 -1"`    // 投票值，1=赞成，-1=反对
}
