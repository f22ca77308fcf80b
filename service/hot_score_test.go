package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHotScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("同龄帖子得分高者热度高", func(t *testing.T) {
		createdAt := now.Add(-4 * time.Hour)
		assert.Greater(t, HotScore(100, createdAt, now), HotScore(10, createdAt, now))
	})

	t.Run("同分帖子越新热度越高", func(t *testing.T) {
		fresh := HotScore(50, now.Add(-1*time.Hour), now)
		stale := HotScore(50, now.Add(-48*time.Hour), now)
		assert.Greater(t, fresh, stale)
	})

	t.Run("零分帖子热度为零", func(t *testing.T) {
		assert.Zero(t, HotScore(0, now.Add(-10*time.Hour), now))
	})

	t.Run("负分帖子热度为负且随时间向零衰减", func(t *testing.T) {
		recent := HotScore(-20, now.Add(-1*time.Hour), now)
		old := HotScore(-20, now.Add(-100*time.Hour), now)
		assert.Negative(t, recent)
		assert.Negative(t, old)
		assert.Greater(t, old, recent, "负分的衰减应让旧帖更接近零")
	})

	t.Run("发布时间在未来时按零帖龄处理", func(t *testing.T) {
		future := HotScore(30, now.Add(2*time.Hour), now)
		justNow := HotScore(30, now, now)
		assert.InDelta(t, justNow, future, 1e-9)
	})

	t.Run("零帖龄的分母为加成常数", func(t *testing.T) {
		// score / 2^1.5
		want := 40.0 / math.Pow(2, 1.5)
		assert.InDelta(t, want, HotScore(40, now, now), 1e-9)
	})
}
