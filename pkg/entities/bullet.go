package entities

import (
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Bullet 玩家子弹，同一时刻最多存在一颗
type Bullet struct {
	MovableEntity
	texture types.TextureID
}

// NewBullet 创建位于 (x, y) 的子弹
func NewBullet(res *game.Resources, x, y float64) *Bullet {
	return &Bullet{
		MovableEntity: newMovable(x, y, config.BulletWidth, config.BulletHeight),
		texture:       res.Bullet,
	}
}

// Update 子弹向上移动，离开屏幕顶部时销毁
func (b *Bullet) Update(deltaTime float64) {
	b.Y -= config.BulletSpeed * clampDelta(deltaTime)
	b.syncRect()
	if b.Y < 0 {
		b.Destroy()
	}
}

// Texture 返回子弹贴图
func (b *Bullet) Texture() types.TextureID {
	return b.texture
}
