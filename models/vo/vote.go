package vo

import (
	"time"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// 投票落账结果的三种状态
const (
	VoteOutcomeCreated = "created" // 新建投票
	VoteOutcomeUpdated = "updated" // 改票（+1 <-> -1）
	VoteOutcomeRemoved = "removed" // 同值重投，撤销投票
)

// VoteVO 定义了单条投票的响应数据结构
type VoteVO struct {
	ID        uint64    `json:"id"`        // 投票ID
	UserID    string    `json:"userId"`    // 投票人用户ID
	PostID    *uint64   `json:"postId"`    // 目标帖子ID，评论投票时为 null
	CommentID *uint64   `json:"commentId"` // 目标评论ID，帖子投票时为 null
	Value     int8      `json:"value"`     // 投票值，1 或 -1
	CreatedAt time.Time `json:"createdAt"` // 创建时间
}

// CastVoteResultVO 定义了投票操作的响应数据结构
// - Outcome 标识这次点击落账为新建/改票/撤销
// - 撤销时 Vote 为 null（投票行已删除）
// - ScoreDelta 是该目标净得分的变化量，SPA 可据此做乐观更新，但权威得分
//   始终以重新拉取列表时的聚合值为准
type CastVoteResultVO struct {
	Outcome    string  `json:"outcome"`    // created / updated / removed
	Vote       *VoteVO `json:"vote"`       // 存活的投票行，撤销时为 null
	ScoreDelta int8    `json:"scoreDelta"` // 目标净得分变化量
}

// NewVoteVO 将投票实体转换为响应VO
func NewVoteVO(v *entities.Vote) *VoteVO {
	return &VoteVO{
		ID:        v.ID,
		UserID:    v.UserID,
		PostID:    v.PostID,
		CommentID: v.CommentID,
		Value:     v.Value,
		CreatedAt: v.CreatedAt,
	}
}
