package vo

import (
	"time"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// CommentVO 定义了评论的响应数据结构
// - Replies 由评论树构建器填充，形成每个帖子的回复森林；构建器只产出新的包装节点，
//   不会回写存储，也不会修改输入
type CommentVO struct {
	ID             uint64       `json:"id"`             // 评论ID
	Content        string       `json:"content"`        // 评论内容
	PostID         uint64       `json:"postId"`         // 所属帖子ID
	ParentID       *uint64      `json:"parentId"`       // 父评论ID，顶级评论为 null
	AuthorID       string       `json:"authorId"`       // 作者用户ID
	AuthorUsername string       `json:"authorUsername"` // 作者用户名（冗余同步）
	VoteScore      int64        `json:"voteScore"`      // 净得分，SUM(value)
	UserVote       int8         `json:"userVote"`       // 当前用户的投票值，-1/0/1
	Replies        []*CommentVO `json:"replies"`        // 子回复，按输入顺序稳定排列
	CreatedAt      time.Time    `json:"createdAt"`      // 创建时间
	UpdatedAt      time.Time    `json:"updatedAt"`      // 更新时间
}

// NewCommentVO 将评论实体转换为响应VO；得分、用户投票与回复由调用方随后填充
func NewCommentVO(c *entities.Comment) *CommentVO {
	return &CommentVO{
		ID:             c.ID,
		Content:        c.Content,
		PostID:         c.PostID,
		ParentID:       c.ParentID,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		Replies:        []*CommentVO{},
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
