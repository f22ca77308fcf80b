package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrCommunityNameTaken 表示社区名称已被占用（唯一索引冲突）
var ErrCommunityNameTaken = errors.New("community: name already taken")

// ErrCommunityNameInvalid 表示社区名称不符合命名规则
var ErrCommunityNameInvalid = errors.New("community: name must be 3-21 characters of letters, digits or underscore")
