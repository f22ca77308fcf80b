package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/myErrors"
	"github.com/Xushengqwer/discussion_service/repo/mysql"
	"github.com/Xushengqwer/discussion_service/repo/redis"
)

// hotCacheStub 以固定结果响应热榜缓存读取。
type hotCacheStub struct {
	posts     []*vo.PostVO
	err       error
	calls     int
	lastLimit int
}

func (s *hotCacheStub) ReplaceHotList(ctx context.Context, entries []redis.HotPostEntry) error {
	return nil
}

func (s *hotCacheStub) GetTopPosts(ctx context.Context, limit int) ([]*vo.PostVO, error) {
	s.calls++
	s.lastLimit = limit
	return s.posts, s.err
}

// listPostRepoStub 记录列表查询参数并返回预设实体。
type listPostRepoStub struct {
	mysql.PostRepository

	posts     []*entities.Post
	lastQuery *mysql.PostListQuery
	calls     int
}

func (s *listPostRepoStub) ListPosts(ctx context.Context, query *mysql.PostListQuery) ([]*entities.Post, error) {
	s.calls++
	s.lastQuery = query
	return s.posts, nil
}

type communityNamesRepoStub struct {
	mysql.CommunityRepository

	names map[uint64]string
}

func (s *communityNamesRepoStub) GetCommunityNamesByIDs(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	return s.names, nil
}

type overlayVoteRepoStub struct {
	mysql.VoteRepository

	scores    map[uint64]int64
	userVotes map[uint64]int8
}

func (s *overlayVoteRepoStub) ScoreForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return s.scores, nil
}

func (s *overlayVoteRepoStub) UserVotesForPosts(ctx context.Context, userID string, postIDs []uint64) (map[uint64]int8, error) {
	return s.userVotes, nil
}

// 全站 hot 流（sort 缺省即 hot）命中热榜缓存时直接返回快照，
// 不落到数据库查询，当前用户的投票值实时覆盖。
func TestListPosts_HotServedFromCache(t *testing.T) {
	cache := &hotCacheStub{
		posts: []*vo.PostVO{
			{ID: 1, Title: "first", VoteScore: 10},
			{ID: 2, Title: "second", VoteScore: 3},
		},
	}
	postRepo := &listPostRepoStub{}
	svc := &postService{
		postRepo:     postRepo,
		voteRepo:     &overlayVoteRepoStub{userVotes: map[uint64]int8{2: -1}},
		hotRankCache: cache,
		logger:       newTestLogger(t),
	}

	result, err := svc.ListPosts(context.Background(), &dto.ListPostsRequest{}, "user-1")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, uint64(1), result[0].ID)
	assert.Equal(t, int8(0), result[0].UserVote)
	assert.Equal(t, int8(-1), result[1].UserVote, "快照不含用户投票值，需实时覆盖")

	assert.Equal(t, 0, postRepo.calls, "缓存命中时不应回源数据库")
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, mysql.DefaultListLimit, cache.lastLimit, "未指定条数时按列表缺省值读取")
}

// 热榜缓存未命中时回源数据库的 hot 排序，并照常补全展示字段。
func TestListPosts_HotCacheMissFallsBackToSQL(t *testing.T) {
	post := &entities.Post{Title: "fallback", CommunityID: 5, AuthorID: "author-1"}
	post.ID = 11

	cache := &hotCacheStub{err: myErrors.ErrCacheMiss}
	postRepo := &listPostRepoStub{posts: []*entities.Post{post}}
	svc := &postService{
		postRepo:      postRepo,
		communityRepo: &communityNamesRepoStub{names: map[uint64]string{5: "golang"}},
		voteRepo:      &overlayVoteRepoStub{scores: map[uint64]int64{11: 4}},
		hotRankCache:  cache,
		logger:        newTestLogger(t),
	}

	result, err := svc.ListPosts(context.Background(), &dto.ListPostsRequest{Sort: "hot"}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, cache.calls)
	require.Equal(t, 1, postRepo.calls)
	assert.Equal(t, "hot", postRepo.lastQuery.Sort)

	require.Len(t, result, 1)
	assert.Equal(t, "golang", result[0].CommunityName)
	assert.Equal(t, int64(4), result[0].VoteScore)
}

// 按社区过滤的 hot 查询不在全站快照覆盖范围内，直接走数据库。
func TestListPosts_CommunityFilterBypassesCache(t *testing.T) {
	communityID := uint64(5)
	cache := &hotCacheStub{}
	postRepo := &listPostRepoStub{}
	svc := &postService{
		postRepo:      postRepo,
		communityRepo: &communityNamesRepoStub{},
		voteRepo:      &overlayVoteRepoStub{},
		hotRankCache:  cache,
		logger:        newTestLogger(t),
	}

	_, err := svc.ListPosts(context.Background(), &dto.ListPostsRequest{Sort: "hot", CommunityID: &communityID}, "")
	require.NoError(t, err)

	assert.Equal(t, 0, cache.calls)
	require.Equal(t, 1, postRepo.calls)
	require.NotNil(t, postRepo.lastQuery.CommunityID)
	assert.Equal(t, communityID, *postRepo.lastQuery.CommunityID)
}
