package service

import (
	"context"
	"errors"
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
)

// newTestLogger 构造一个只输出 error 级别的日志器，避免测试输出被刷屏。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	return logger
}

// ledgerVoteRepoStub 按预设脚本响应投票仓库调用，用来复现并发插入撞唯一索引的时序。
// FindByUserAndTarget 依次返回 findResults 中的元素，CreateVote 返回 createErr。
type ledgerVoteRepoStub struct {
	mysql.VoteRepository

	findResults []*entities.Vote
	findCalls   int
	createErr   error
	createCalls int
	updatedTo   []int8
	deletedIDs  []uint64
}

func (s *ledgerVoteRepoStub) FindByUserAndTarget(ctx context.Context, db *gorm.DB, userID string, target entities.VoteTarget) (*entities.Vote, error) {
	idx := s.findCalls
	s.findCalls++
	if idx >= len(s.findResults) {
		return nil, nil
	}
	return s.findResults[idx], nil
}

func (s *ledgerVoteRepoStub) CreateVote(ctx context.Context, db *gorm.DB, vote *entities.Vote) error {
	s.createCalls++
	return s.createErr
}

func (s *ledgerVoteRepoStub) UpdateVoteValue(ctx context.Context, db *gorm.DB, voteID uint64, value int8) error {
	s.updatedTo = append(s.updatedTo, value)
	return nil
}

func (s *ledgerVoteRepoStub) DeleteVote(ctx context.Context, db *gorm.DB, voteID uint64) error {
	s.deletedIDs = append(s.deletedIDs, voteID)
	return nil
}

func newLedgerService(t *testing.T, repo *ledgerVoteRepoStub) *voteService {
	t.Helper()
	return &voteService{
		voteRepo: repo,
		logger:   newTestLogger(t),
	}
}

func postTarget(t *testing.T, postID uint64) entities.VoteTarget {
	t.Helper()
	target, err := entities.NewVoteTarget(&postID, nil)
	require.NoError(t, err)
	return target
}

// 并发请求抢先插入了相反值的投票：本次插入撞唯一索引后必须在同一事务内
// 重读现存行并落成改票，而不是把冲突暴露给调用方。
func TestApplyVote_DuplicateKeyResolvesToUpdate(t *testing.T) {
	existing := &entities.Vote{UserID: "user-1", Value: -1}
	existing.ID = 7

	repo := &ledgerVoteRepoStub{
		findResults: []*entities.Vote{nil, existing},
		createErr:   gorm.ErrDuplicatedKey,
	}
	svc := newLedgerService(t, repo)

	result, err := svc.applyVote(context.Background(), nil, "user-1", postTarget(t, 42), 1)
	require.NoError(t, err)

	assert.Equal(t, vo.VoteOutcomeUpdated, result.Outcome)
	assert.Equal(t, int8(2), result.ScoreDelta)
	require.NotNil(t, result.Vote)
	assert.Equal(t, int8(1), result.Vote.Value)

	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 2, repo.findCalls, "撞索引后应重读现存投票")
	assert.Equal(t, []int8{1}, repo.updatedTo)
	assert.Empty(t, repo.deletedIDs)
}

// 抢先插入的是同值投票：撞索引后重读，按同值重投即取消的规则落成撤销。
func TestApplyVote_DuplicateKeyResolvesToRemove(t *testing.T) {
	existing := &entities.Vote{UserID: "user-1", Value: 1}
	existing.ID = 9

	repo := &ledgerVoteRepoStub{
		findResults: []*entities.Vote{nil, existing},
		createErr:   gorm.ErrDuplicatedKey,
	}
	svc := newLedgerService(t, repo)

	result, err := svc.applyVote(context.Background(), nil, "user-1", postTarget(t, 42), 1)
	require.NoError(t, err)

	assert.Equal(t, vo.VoteOutcomeRemoved, result.Outcome)
	assert.Equal(t, int8(-1), result.ScoreDelta)
	assert.Nil(t, result.Vote)
	assert.Equal(t, []uint64{9}, repo.deletedIDs)
	assert.Empty(t, repo.updatedTo)
}

// 唯一索引之外的插入错误不做重试，原样上抛。
func TestApplyVote_CreateErrorSurfaces(t *testing.T) {
	insertErr := errors.New("connection reset")
	repo := &ledgerVoteRepoStub{
		findResults: []*entities.Vote{nil},
		createErr:   insertErr,
	}
	svc := newLedgerService(t, repo)

	_, err := svc.applyVote(context.Background(), nil, "user-1", postTarget(t, 42), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 1, repo.findCalls, "非唯一索引错误不应触发重读")
}

// 撞索引后重读仍读不到现存行属于不可能状态（同事务内删除不可见），报错而非死循环。
func TestApplyVote_DuplicateKeyMissingRowFails(t *testing.T) {
	repo := &ledgerVoteRepoStub{
		findResults: []*entities.Vote{nil, nil},
		createErr:   gorm.ErrDuplicatedKey,
	}
	svc := newLedgerService(t, repo)

	_, err := svc.applyVote(context.Background(), nil, "user-1", postTarget(t, 42), 1)
	require.Error(t, err)
	assert.Equal(t, 2, repo.findCalls)
}
