package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// BombSpawnSystem 管理敌人投弹节奏
//
// 距上次投弹超过 0.6 秒后，参考帧率下每帧抽取一个 [0,40) 的附加延迟，
// 已过时间超过 0.6+延迟 且有存活敌人时，从随机存活敌人处投弹并重置计时。
// 其他帧率下按帧间隔换算这一每帧概率，投弹节奏不随逻辑帧率变化。
type BombSpawnSystem struct {
	world *entities.World
	clock game.Clock
	rng   *rand.Rand
	timer components.TimerComponent
}

// NewBombSpawnSystem 创建投弹系统，计时从当前时刻开始
func NewBombSpawnSystem(world *entities.World, clock game.Clock, rng *rand.Rand) *BombSpawnSystem {
	log.Printf("[BombSpawnSystem] Initialized with min interval=%.1fs, extra delay=[0,%.0f)",
		config.BombMinInterval, config.BombMaxExtraDelay)
	return &BombSpawnSystem{
		world: world,
		clock: clock,
		rng:   rng,
		timer: components.NewTimerComponent("bomb_spawn", clock.Now()),
	}
}

// Reset 从当前时刻重新计时
func (s *BombSpawnSystem) Reset() {
	s.timer.Reset(s.clock.Now())
}

// Update 检查是否应当投弹
func (s *BombSpawnSystem) Update() {
	now := s.clock.Now()
	elapsed := s.timer.Elapsed(now)
	if elapsed <= config.BombMinInterval {
		return
	}

	bombType := types.BombType(s.rng.Intn(types.BombTypeCount))
	if !s.shouldDrop(elapsed) {
		return
	}

	live := s.world.LiveEnemies()
	if len(live) == 0 {
		return
	}

	enemy := live[s.rng.Intn(len(live))]
	bomb := s.world.SpawnBomb(enemy, bombType)
	s.timer.Reset(now)

	log.Printf("[BombSpawnSystem] %s bomb at (%.0f, %.0f) after %.2fs", bombType, bomb.X, bomb.Y, elapsed)
}

// shouldDrop 本帧是否投弹
// 参考帧率下每帧的概率为 P(延迟 < elapsed-0.6)，即 (elapsed-0.6)/40；
// 一帧跨越 n 个参考帧时概率为 1-(1-p)^n
func (s *BombSpawnSystem) shouldDrop(elapsed float64) bool {
	hazard := (elapsed - config.BombMinInterval) / config.BombMaxExtraDelay
	if hazard >= 1 {
		return true
	}
	frames := float64(s.clock.FrameDelta()) * config.ReferenceFPS
	return s.rng.Float64() < 1-math.Pow(1-hazard, frames)
}
