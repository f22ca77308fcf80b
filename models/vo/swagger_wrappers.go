package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// CommunityResponseWrapper 对应 response.APIResponse[vo.CommunityVO]
type CommunityResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    CommunityVO `json:"data"`
}

// CommunityListResponseWrapper 对应 response.APIResponse[[]vo.CommunityVO]
type CommunityListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*CommunityVO `json:"data"`
}

// PostResponseWrapper 对应 response.APIResponse[vo.PostVO]
type PostResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    PostVO `json:"data"`
}

// PostListResponseWrapper 对应 response.APIResponse[[]vo.PostVO]
type PostListResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    []*PostVO `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentVO]
type CommentResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    CommentVO `json:"data"`
}

// CommentForestResponseWrapper 对应 response.APIResponse[[]vo.CommentVO]
// Data 是顶级评论的列表，每个节点递归携带 replies
type CommentForestResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []*CommentVO `json:"data"`
}

// CastVoteResponseWrapper 对应 response.APIResponse[vo.CastVoteResultVO]
type CastVoteResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    CastVoteResultVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
