package service

import (
	"math"
	"time"
)

// hotGravity 控制热度随时间衰减的速度，越大衰减越快。
const hotGravity = 1.5

// HotScore 计算帖子的热度分：净得分随帖龄按幂次衰减。
// 分母加 2 小时，避免刚发出的帖子因帖龄趋近于零而分数爆炸。
// 纯函数，now 由调用方传入，便于测试。
func HotScore(voteScore int64, createdAt time.Time, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return float64(voteScore) / math.Pow(ageHours+2, hotGravity)
}
