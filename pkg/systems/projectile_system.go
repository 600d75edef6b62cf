package systems

import "github.com/denix666/space-invaders/pkg/entities"

// ProjectileSystem 更新子弹、炸弹和飞碟的位置与动画
// 越界的实体在各自的 Update 中被标记销毁
type ProjectileSystem struct {
	world *entities.World
}

// NewProjectileSystem 创建弹道系统
func NewProjectileSystem(world *entities.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update 更新所有未销毁的子弹和炸弹，以及第一个飞碟
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, b := range s.world.Bullets {
		if !b.Destroyed {
			b.Update(deltaTime)
		}
	}
	for _, b := range s.world.Bombs {
		if !b.Destroyed {
			b.Update(deltaTime)
		}
	}
	if ufo := s.world.ActiveUfo(); ufo != nil {
		ufo.Update(deltaTime)
	}
}
