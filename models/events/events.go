// Package events 定义了本服务与上下游通过 Kafka 交换的事件结构。
// 所有出站事件共享 EventID + Timestamp 的信封字段，便于下游做幂等去重。
package events

import "time"

// PostEventData 帖子事件的载荷（出站）
type PostEventData struct {
	ID             uint64 `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	CommunityID    uint64 `json:"communityId"`
	AuthorID       string `json:"authorId"`
	AuthorUsername string `json:"authorUsername"`
	CreatedAt      int64  `json:"createdAt"` // Unix 毫秒
}

// PostCreatedEvent 帖子创建事件，供搜索/推送等下游服务消费
type PostCreatedEvent struct {
	EventID   string        `json:"eventId"`
	Timestamp time.Time     `json:"timestamp"`
	Post      PostEventData `json:"post"`
}

// CommentEventData 评论事件的载荷（出站）
type CommentEventData struct {
	ID             uint64  `json:"id"`
	Content        string  `json:"content"`
	PostID         uint64  `json:"postId"`
	ParentID       *uint64 `json:"parentId"`
	AuthorID       string  `json:"authorId"`
	AuthorUsername string  `json:"authorUsername"`
	CreatedAt      int64   `json:"createdAt"` // Unix 毫秒
}

// CommentCreatedEvent 评论创建事件，通知服务据此给帖子/父评论作者发通知
type CommentCreatedEvent struct {
	EventID   string           `json:"eventId"`
	Timestamp time.Time        `json:"timestamp"`
	Comment   CommentEventData `json:"comment"`
}

// VoteChangedEvent 投票变更事件
// - Outcome 与 HTTP 响应中的取值一致：created / updated / removed
// - ScoreDelta 为目标净得分的变化量，下游的 feed 排序服务可增量应用，
//   也可忽略增量改为全量回源
type VoteChangedEvent struct {
	EventID    string    `json:"eventId"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"userId"`
	PostID     *uint64   `json:"postId"`
	CommentID  *uint64   `json:"commentId"`
	Outcome    string    `json:"outcome"`
	Value      int8      `json:"value"`
	ScoreDelta int8      `json:"scoreDelta"`
}

// UserProfileChangedEvent 用户资料变更事件（入站，用户服务发布）。
// 本服务消费它来同步 posts/comments 上冗余的作者用户名。
type UserProfileChangedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
}
