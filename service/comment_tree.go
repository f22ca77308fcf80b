package service

import (
	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
)

// BuildCommentForest 把一个帖子的扁平评论列表组装成回复森林。
//
// 组装规则:
//   - 两遍遍历：第一遍为每条评论建包装节点并按 ID 建索引，第二遍按 ParentID 挂接。
//   - ParentID 为空的评论是根节点；ParentID 指向的评论不在输入中（父评论已删除等）
//     时该评论被静默丢弃，不提升为根节点。
//   - 根节点与各层 Replies 均保持输入顺序，输入有序则输出有序。
//   - 纯函数：不读存储，不修改输入切片与实体，只产出新的 VO 节点。
//
// 数据里不应该出现 ParentID 成环（自引用或互相引用），但组装器不信任这一点：
// 挂接时跳过指向自身的边，保证任何输入都能在线性时间内组装完成。
func BuildCommentForest(comments []*entities.Comment) []*vo.CommentVO {
	roots := make([]*vo.CommentVO, 0, len(comments))
	if len(comments) == 0 {
		return roots
	}

	// 第一遍：建节点与索引。同 ID 重复出现时保留首次出现的节点。
	nodes := make(map[uint64]*vo.CommentVO, len(comments))
	ordered := make([]*vo.CommentVO, 0, len(comments))
	for _, c := range comments {
		if c == nil {
			continue
		}
		if _, exists := nodes[c.ID]; exists {
			continue
		}
		node := vo.NewCommentVO(c)
		nodes[c.ID] = node
		ordered = append(ordered, node)
	}

	// 第二遍：挂接。
	for _, node := range ordered {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parentID := *node.ParentID
		if parentID == node.ID {
			// 自引用，数据异常，丢弃该子树入口。
			continue
		}
		parent, found := nodes[parentID]
		if !found {
			// 父评论不在本帖的评论集里，静默丢弃。
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	return roots
}
