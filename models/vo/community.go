package vo

import (
	"time"

	"github.com/Xushengqwer/discussion_service/models/entities"
)

// CommunityVO 定义了社区的响应数据结构
type CommunityVO struct {
	ID          uint64    `json:"id"`          // 社区ID
	Name        string    `json:"name"`        // 社区名称
	Description string    `json:"description"` // 社区描述
	CreatedBy   string    `json:"createdBy"`   // 创建者用户ID
	CreatedAt   time.Time `json:"createdAt"`   // 创建时间
}

// NewCommunityVO 将社区实体转换为响应VO
func NewCommunityVO(c *entities.Community) *CommunityVO {
	return &CommunityVO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCommunityVOs 批量转换，返回空切片而不是 nil，便于前端处理
func NewCommunityVOs(communities []*entities.Community) []*CommunityVO {
	vos := make([]*CommunityVO, 0, len(communities))
	for _, c := range communities {
		if c == nil {
			continue
		}
		vos = append(vos, NewCommunityVO(c))
	}
	return vos
}
