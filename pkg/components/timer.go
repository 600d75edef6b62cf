package components

// TimerComponent 通用计时器组件
// 基于时钟读数计时：记录上次重置的时刻，已过时间 = 当前时刻 - 重置时刻
type TimerComponent struct {
	Name      string  // 计时器名称，如 "bomb_spawn"
	LastReset float64 // 上次重置时的时钟读数（秒）
}

// NewTimerComponent 创建计时器并从 now 开始计时
func NewTimerComponent(name string, now float64) TimerComponent {
	return TimerComponent{Name: name, LastReset: now}
}

// Reset 从 now 重新开始计时
func (t *TimerComponent) Reset(now float64) {
	t.LastReset = now
}

// Elapsed 返回自上次重置以来经过的秒数
func (t *TimerComponent) Elapsed(now float64) float64 {
	return now - t.LastReset
}
