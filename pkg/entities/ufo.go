package entities

import (
	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Ufo 奖励飞碟，从一侧出现飞向另一侧
type Ufo struct {
	MovableEntity
	Side      types.Side
	Animation components.AnimationComponent
}

// NewUfo 在指定侧创建飞碟
func NewUfo(res *game.Resources, side types.Side) *Ufo {
	x := config.UfoLeftSpawnX
	if side == types.SideRight {
		x = config.UfoRightSpawnX
	}
	return &Ufo{
		MovableEntity: newMovable(x, config.UfoY, config.UfoWidth, config.UfoHeight),
		Side:          side,
		Animation:     components.NewAnimationComponent(res.Ufo, config.UfoAnimationSpeed),
	}
}

// Update 水平飞行，离开对侧边缘时销毁
func (u *Ufo) Update(deltaTime float64) {
	step := config.UfoSpeed * clampDelta(deltaTime)
	if u.Side == types.SideLeft {
		u.X += step
	} else {
		u.X -= step
	}
	u.Animation.Advance()
	u.syncRect()

	if u.Side == types.SideLeft && u.X > config.GameWindowWidth {
		u.Destroy()
	}
	if u.Side == types.SideRight && u.X < -u.Rect.Width {
		u.Destroy()
	}
}

// Texture 返回当前动画帧
func (u *Ufo) Texture() types.TextureID {
	return u.Animation.Texture()
}
