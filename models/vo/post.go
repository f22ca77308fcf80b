package vo

import (
	"time"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// PostVO 定义了帖子的响应数据结构
// - VoteScore 与 UserVote 均为派生字段，实时从投票账本聚合得出，绝不信任客户端预测的增量
// - CommunityName 为连表带出的展示字段，列表页免去一次社区查询
type PostVO struct {
	ID             uint64    `json:"id"`             // 帖子ID
	Title          string    `json:"title"`          // 帖子标题
	Content        string    `json:"content"`        // 正文内容
	CommunityID    uint64    `json:"communityId"`    // 所属社区ID
	CommunityName  string    `json:"communityName"`  // 所属社区名称（连表带出）
	AuthorID       string    `json:"authorId"`       // 作者用户ID
	AuthorUsername string    `json:"authorUsername"` // 作者用户名（冗余同步）
	VoteScore      int64     `json:"voteScore"`      // 净得分，SUM(value)
	UserVote       int8      `json:"userVote"`       // 当前用户的投票值，-1/0/1，未登录恒为0
	CreatedAt      time.Time `json:"createdAt"`      // 创建时间
	UpdatedAt      time.Time `json:"updatedAt"`      // 更新时间
}

// NewPostVO 将帖子实体转换为响应VO；得分与用户投票由调用方随后填充
func NewPostVO(p *entities.Post) *PostVO {
	return &PostVO{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		CommunityID:    p.CommunityID,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
