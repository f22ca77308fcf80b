package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoteTarget(t *testing.T) {
	postID := uint64(42)
	commentID := uint64(7)

	testCases := []struct {
		name      string
		postID    *uint64
		commentID *uint64
		wantKind  VoteTargetKind
		wantID    uint64
		wantErr   bool
	}{
		{name: "只给帖子ID", postID: &postID, wantKind: VoteTargetPost, wantID: 42},
		{name: "只给评论ID", commentID: &commentID, wantKind: VoteTargetComment, wantID: 7},
		{name: "两个都不给", wantErr: true},
		{name: "两个都给", postID: &postID, commentID: &commentID, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := NewVoteTarget(tc.postID, tc.commentID)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVoteTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, target.Kind())
			assert.Equal(t, tc.wantID, target.ID())
		})
	}
}

func TestVoteTarget_Row(t *testing.T) {
	t.Run("帖子目标展开后评论列为NULL", func(t *testing.T) {
		postID, commentID := PostTarget(42).Row()
		require.NotNil(t, postID)
		assert.Equal(t, uint64(42), *postID)
		assert.Nil(t, commentID)
	})

	t.Run("评论目标展开后帖子列为NULL", func(t *testing.T) {
		postID, commentID := CommentTarget(7).Row()
		assert.Nil(t, postID)
		require.NotNil(t, commentID)
		assert.Equal(t, uint64(7), *commentID)
	})
}

func TestVoteTarget_IsPost(t *testing.T) {
	assert.True(t, PostTarget(1).IsPost())
	assert.False(t, CommentTarget(1).IsPost())
}
