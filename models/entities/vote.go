package entities

import (
	"errors"

	"github.com/Xushengqwer/go-common/models/entities"
)

// 投票值只允许 +1（赞成）与 -1（反对）
const (
	VoteValueUp   int8 = 1
	VoteValueDown int8 = -1
)

// ErrInvalidVoteTarget 表示投票目标不满足“帖子与评论二选一”的约束
var ErrInvalidVoteTarget = errors.New("vote target must be exactly one of post or comment")

// Vote 投票实体
// - 使用场景: 记录用户对帖子或评论的赞成/反对，单用户对单目标至多一票
// - 表名: votes (GORM 默认使用结构体名复数形式)
// - 一致性设计:
//   - PostID 与 CommentID 恰好一个非 NULL，由数据库 CHECK 约束兜底（见 PostID 字段标签），
//     应用层在构造存储行之前先通过 VoteTarget 校验（双保险）
//   - (user_id, post_id) 与 (user_id, comment_id) 各有一个唯一索引；MySQL 的唯一索引
//     把 NULL 视为彼此不同，因此两个索引天然互不干扰，共同实现"每目标至多一票"。
//     唯一索引是该不变量的唯一权威：并发写入时应用层的先查后写可能失效，
//     插入撞到唯一键冲突必须按"改票"重试，而不是信任之前的查询结果
type Vote struct {
	entities.BaseModel // 嵌入公共 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 投票人用户ID
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_user_post_vote;uniqueIndex:idx_user_comment_vote"`

	// 目标帖子ID，与 CommentID 互斥，可为 NULL
	PostID *uint64 `gorm:"type:bigint;uniqueIndex:idx_user_post_vote;check:chk_vote_target,(post_id IS NULL) <> (comment_id IS NULL)"`

	// 目标评论ID，与 PostID 互斥，可为 NULL
	CommentID *uint64 `gorm:"type:bigint;uniqueIndex:idx_user_comment_vote"`

	// 投票值，+1 或 -1
	// - 合法性在 DTO 绑定与服务层各校验一次
	Value int8 `gorm:"type:tinyint;not null"`
}

// VoteTargetKind 投票目标类别
type VoteTargetKind uint8

const (
	VoteTargetPost    VoteTargetKind = iota + 1 // 目标是帖子
	VoteTargetComment                           // 目标是评论
)

// VoteTarget 是应用层的投票目标变体类型（帖子或评论，带标签的二选一）。
// 用它取代在代码里到处传两个可空ID，互斥检查在构造时一次完成。
type VoteTarget struct {
	kind VoteTargetKind
	id   uint64
}

// NewVoteTarget 根据请求中的两个可空ID构造投票目标。
// 两者都给或都不给时返回 ErrInvalidVoteTarget，此时不会有任何存储行被构造。
func NewVoteTarget(postID, commentID *uint64) (VoteTarget, error) {
	if (postID == nil) == (commentID == nil) {
		return VoteTarget{}, ErrInvalidVoteTarget
	}
	if postID != nil {
		return VoteTarget{kind: VoteTargetPost, id: *postID}, nil
	}
	return VoteTarget{kind: VoteTargetComment, id: *commentID}, nil
}

// PostTarget 构造一个指向帖子的投票目标
func PostTarget(postID uint64) VoteTarget {
	return VoteTarget{kind: VoteTargetPost, id: postID}
}

// CommentTarget 构造一个指向评论的投票目标
func CommentTarget(commentID uint64) VoteTarget {
	return VoteTarget{kind: VoteTargetComment, id: commentID}
}

// Kind 返回目标类别
func (t VoteTarget) Kind() VoteTargetKind { return t.kind }

// ID 返回目标实体的主键
func (t VoteTarget) ID() uint64 { return t.id }

// IsPost 目标是否为帖子
func (t VoteTarget) IsPost() bool { return t.kind == VoteTargetPost }

// Row 把目标展开成存储行需要的两个可空外键。
func (t VoteTarget) Row() (postID, commentID *uint64) {
	id := t.id
	if t.kind == VoteTargetPost {
		return &id, nil
	}
	return nil, &id
}
