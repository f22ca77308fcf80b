package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
)

func TestResolveVoteTransition(t *testing.T) {
	existingVote := func(value int8) *entities.Vote {
		v := &entities.Vote{UserID: "user-1", Value: value}
		v.ID = 10
		return v
	}

	testCases := []struct {
		name      string
		existing  *entities.Vote
		requested int8
		want      voteTransition
	}{
		{
			name:      "无现存投票时点赞为新建",
			existing:  nil,
			requested: 1,
			want:      voteTransition{Outcome: vo.VoteOutcomeCreated, NewValue: 1, ScoreDelta: 1},
		},
		{
			name:      "无现存投票时点踩为新建",
			existing:  nil,
			requested: -1,
			want:      voteTransition{Outcome: vo.VoteOutcomeCreated, NewValue: -1, ScoreDelta: -1},
		},
		{
			name:      "重复点赞为撤销",
			existing:  existingVote(1),
			requested: 1,
			want:      voteTransition{Outcome: vo.VoteOutcomeRemoved, ScoreDelta: -1},
		},
		{
			name:      "重复点踩为撤销",
			existing:  existingVote(-1),
			requested: -1,
			want:      voteTransition{Outcome: vo.VoteOutcomeRemoved, ScoreDelta: 1},
		},
		{
			name:      "点踩翻成点赞，得分净增2",
			existing:  existingVote(-1),
			requested: 1,
			want:      voteTransition{Outcome: vo.VoteOutcomeUpdated, NewValue: 1, ScoreDelta: 2},
		},
		{
			name:      "点赞翻成点踩，得分净减2",
			existing:  existingVote(1),
			requested: -1,
			want:      voteTransition{Outcome: vo.VoteOutcomeUpdated, NewValue: -1, ScoreDelta: -2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveVoteTransition(tc.existing, tc.requested)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 一次“点赞、再点赞撤销、点踩、再点赞改票”的完整序列，
// 验证得分变化量累加后与最终账面一致。
func TestResolveVoteTransition_SequenceBalances(t *testing.T) {
	var score int64
	var existing *entities.Vote

	apply := func(requested int8) voteTransition {
		tr := resolveVoteTransition(existing, requested)
		score += int64(tr.ScoreDelta)
		switch tr.Outcome {
		case vo.VoteOutcomeRemoved:
			existing = nil
		default:
			v := &entities.Vote{UserID: "user-1", Value: tr.NewValue}
			v.ID = 10
			existing = v
		}
		return tr
	}

	assert.Equal(t, vo.VoteOutcomeCreated, apply(1).Outcome)
	assert.Equal(t, int64(1), score)

	assert.Equal(t, vo.VoteOutcomeRemoved, apply(1).Outcome)
	assert.Equal(t, int64(0), score)

	assert.Equal(t, vo.VoteOutcomeCreated, apply(-1).Outcome)
	assert.Equal(t, int64(-1), score)

	assert.Equal(t, vo.VoteOutcomeUpdated, apply(1).Outcome)
	assert.Equal(t, int64(1), score)
}
