package systems

import (
	"log"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// FormationSystem 驱动敌人编队的整体移动
//
// 所有成员按共享方向移动；任一成员越过边界时方向翻转，
// 全体下压并加速。每帧最多翻转一次。
type FormationSystem struct {
	world   *entities.World
	session *game.Session
}

// NewFormationSystem 创建编队系统
func NewFormationSystem(world *entities.World, session *game.Session) *FormationSystem {
	return &FormationSystem{
		world:   world,
		session: session,
	}
}

// Update 移动编队，返回本帧是否发生了翻转
func (s *FormationSystem) Update(deltaTime float64) bool {
	dir := s.world.Direction
	crossed := false

	for _, e := range s.world.Enemies {
		if e.Destroyed {
			continue
		}
		e.Update(deltaTime, dir, s.session.EnemySpeed)

		if dir == types.DirLeft && e.X < config.FormationMinX {
			crossed = true
		}
		if dir == types.DirRight && e.X > config.FormationMaxX {
			crossed = true
		}
	}

	if !crossed {
		return false
	}

	if dir == types.DirLeft {
		s.world.Direction = types.DirRight
	} else {
		s.world.Direction = types.DirLeft
	}
	for _, e := range s.world.Enemies {
		if !e.Destroyed {
			e.PullDown(config.PullDownStep)
		}
	}
	s.session.SpeedUp()

	log.Printf("[FormationSystem] direction -> %s, speed=%.1f", s.world.Direction, s.session.EnemySpeed)
	return true
}
