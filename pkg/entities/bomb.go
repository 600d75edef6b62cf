package entities

import (
	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Bomb 敌人投下的炸弹
type Bomb struct {
	MovableEntity
	Type      types.BombType
	Animation components.AnimationComponent
}

// NewBomb 创建位于 (x, y) 的炸弹，类型只影响外观
func NewBomb(res *game.Resources, x, y float64, bombType types.BombType) *Bomb {
	return &Bomb{
		MovableEntity: newMovable(x, y, config.BombWidth, config.BombHeight),
		Type:          bombType,
		Animation:     components.NewAnimationComponent(res.Bombs[bombType], config.BombAnimationSpeed),
	}
}

// Update 炸弹向下移动，越过底线时销毁
func (b *Bomb) Update(deltaTime float64) {
	b.Y += config.BombSpeed * clampDelta(deltaTime)
	b.Animation.Advance()
	b.syncRect()
	if b.Y > config.BombMaxY {
		b.Destroy()
	}
}

// Texture 返回当前动画帧
func (b *Bomb) Texture() types.TextureID {
	return b.Animation.Texture()
}
