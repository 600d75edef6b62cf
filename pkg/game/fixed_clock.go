package game

// FixedClock 按 tick 计数的时钟
//
// 后端以固定 TPS 推进逻辑帧，游戏时间 = tick 数 / TPS，
// 窗口拖动或终端卡顿不会让计时器跳变。
type FixedClock struct {
	ticks int64
	tps   int
}

// NewFixedClock 创建指定 TPS 的时钟，tps < 1 时按 60 处理
func NewFixedClock(tps int) *FixedClock {
	if tps < 1 {
		tps = 60
	}
	return &FixedClock{tps: tps}
}

// Tick 前进一个逻辑帧，每帧更新前调用
func (c *FixedClock) Tick() {
	c.ticks++
}

// Now 返回开始以来的秒数
func (c *FixedClock) Now() float64 {
	return float64(c.ticks) / float64(c.tps)
}

// FrameDelta 返回单帧时长
func (c *FixedClock) FrameDelta() float32 {
	return float32(1.0 / float64(c.tps))
}

var _ Clock = (*FixedClock)(nil)
