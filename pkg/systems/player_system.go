package systems

import (
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// PlayerSystem 把输入意图转换为玩家移动和开火
type PlayerSystem struct {
	world *entities.World
	input game.Input
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(world *entities.World, input game.Input) *PlayerSystem {
	return &PlayerSystem{
		world: world,
		input: input,
	}
}

// Update 处理左右移动和开火
// 已有子弹时开火请求被忽略
func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input.IsKeyDown(types.KeyLeft) {
		s.world.Player.Move(types.DirLeft, deltaTime)
	}
	if s.input.IsKeyDown(types.KeyRight) {
		s.world.Player.Move(types.DirRight, deltaTime)
	}

	if s.input.IsKeyDown(types.KeyUp) || s.input.IsKeyDown(types.KeySpace) {
		s.world.Fire()
	}
}
