package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
)

// newTestComment 构造测试用评论实体，parentID 为 0 表示顶级评论
func newTestComment(id uint64, parentID uint64, content string) *entities.Comment {
	c := &entities.Comment{
		Content:        content,
		PostID:         1,
		AuthorID:       "user-1",
		AuthorUsername: "tester",
	}
	c.ID = id
	if parentID != 0 {
		pid := parentID
		c.ParentID = &pid
	}
	return c
}

// collectIDs 按顺序收集一层节点的 ID，便于断言顺序
func collectIDs(nodes []*vo.CommentVO) []uint64 {
	ids := make([]uint64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestBuildCommentForest_Empty(t *testing.T) {
	forest := BuildCommentForest(nil)
	require.NotNil(t, forest, "空输入应返回空切片而不是 nil，序列化成 [] 而不是 null")
	assert.Len(t, forest, 0)

	forest = BuildCommentForest([]*entities.Comment{})
	require.NotNil(t, forest)
	assert.Len(t, forest, 0)
}

func TestBuildCommentForest_AllRootsKeepOrder(t *testing.T) {
	input := []*entities.Comment{
		newTestComment(3, 0, "third"),
		newTestComment(2, 0, "second"),
		newTestComment(1, 0, "first"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 3)
	assert.Equal(t, []uint64{3, 2, 1}, collectIDs(forest), "根节点应保持输入顺序")
	for _, root := range forest {
		assert.Empty(t, root.Replies)
	}
}

func TestBuildCommentForest_NestedChain(t *testing.T) {
	// 1 <- 2 <- 3 的三层链，且 1 还有一个直接回复 4
	input := []*entities.Comment{
		newTestComment(1, 0, "root"),
		newTestComment(2, 1, "reply to root"),
		newTestComment(3, 2, "reply to reply"),
		newTestComment(4, 1, "another reply to root"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 1)
	root := forest[0]
	assert.Equal(t, uint64(1), root.ID)
	require.Len(t, root.Replies, 2)
	assert.Equal(t, []uint64{2, 4}, collectIDs(root.Replies), "同层回复应保持输入顺序")
	require.Len(t, root.Replies[0].Replies, 1)
	assert.Equal(t, uint64(3), root.Replies[0].Replies[0].ID)
}

func TestBuildCommentForest_OrphanDropped(t *testing.T) {
	// 99 不在输入中，指向它的评论应被丢弃而不是提升为根
	input := []*entities.Comment{
		newTestComment(1, 0, "root"),
		newTestComment(2, 99, "orphan"),
		newTestComment(3, 2, "child of orphan"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 1)
	assert.Equal(t, uint64(1), forest[0].ID)
	assert.Empty(t, forest[0].Replies)
	// 孤儿的子节点挂在孤儿节点下，孤儿整棵子树都不会出现在森林里
}

func TestBuildCommentForest_SelfReferenceSkipped(t *testing.T) {
	input := []*entities.Comment{
		newTestComment(1, 0, "root"),
		newTestComment(2, 2, "points to itself"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 1)
	assert.Equal(t, uint64(1), forest[0].ID)
	assert.Empty(t, forest[0].Replies)
}

func TestBuildCommentForest_DuplicateIDKeepsFirst(t *testing.T) {
	input := []*entities.Comment{
		newTestComment(1, 0, "first occurrence"),
		newTestComment(1, 0, "duplicate"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 1)
	assert.Equal(t, "first occurrence", forest[0].Content)
}

func TestBuildCommentForest_NilEntrySkipped(t *testing.T) {
	input := []*entities.Comment{
		newTestComment(1, 0, "root"),
		nil,
		newTestComment(2, 1, "reply"),
	}

	forest := BuildCommentForest(input)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Replies, 1)
}

func TestBuildCommentForest_DoesNotMutateInput(t *testing.T) {
	root := newTestComment(1, 0, "root")
	reply := newTestComment(2, 1, "reply")
	input := []*entities.Comment{root, reply}

	_ = BuildCommentForest(input)

	assert.Equal(t, uint64(1), root.ID)
	assert.Nil(t, root.ParentID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, uint64(1), *reply.ParentID)
	assert.Equal(t, "root", root.Content)
	assert.Equal(t, "reply", reply.Content)
}
