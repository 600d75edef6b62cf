package systems

import (
	"log"
	"math/rand"

	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// UfoSpawnSystem 每隔固定时间从随机一侧放出飞碟
type UfoSpawnSystem struct {
	world *entities.World
	clock game.Clock
	rng   *rand.Rand
	timer components.TimerComponent
}

// NewUfoSpawnSystem 创建飞碟生成系统，计时从当前时刻开始
func NewUfoSpawnSystem(world *entities.World, clock game.Clock, rng *rand.Rand) *UfoSpawnSystem {
	log.Printf("[UfoSpawnSystem] Initialized with interval=%.1fs", config.UfoSpawnInterval)
	return &UfoSpawnSystem{
		world: world,
		clock: clock,
		rng:   rng,
		timer: components.NewTimerComponent("ufo_spawn", clock.Now()),
	}
}

// Reset 从当前时刻重新计时
func (s *UfoSpawnSystem) Reset() {
	s.timer.Reset(s.clock.Now())
}

// Update 间隔到达时生成飞碟
func (s *UfoSpawnSystem) Update() {
	now := s.clock.Now()
	if s.timer.Elapsed(now) <= config.UfoSpawnInterval {
		return
	}

	side := types.SideLeft
	if s.rng.Intn(2) == 1 {
		side = types.SideRight
	}
	s.world.SpawnUfo(side)
	s.timer.Reset(now)

	log.Printf("[UfoSpawnSystem] *** SPAWNING UFO *** from %s (queue=%d)", side, len(s.world.Ufos))
}
