package entities

import (
	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Enemy 编队成员
// 移动方向由 World 统一保存，敌人自身只负责按方向移动
type Enemy struct {
	MovableEntity
	Type      types.EnemyType
	Animation components.AnimationComponent
}

// NewEnemy 创建位于 (x, y) 的敌人
func NewEnemy(res *game.Resources, x, y float64, enemyType types.EnemyType) *Enemy {
	return &Enemy{
		MovableEntity: newMovable(x, y, config.EnemyWidth, config.EnemyHeight),
		Type:          enemyType,
		Animation:     components.NewAnimationComponent(res.Enemies[enemyType], config.EnemyAnimationSpeed),
	}
}

// Update 按编队方向水平移动
// speed 为每帧参考像素数，换算为每秒 speed*60 像素
func (e *Enemy) Update(deltaTime float64, dir types.Direction, speed float64) {
	step := speed * config.ReferenceFPS * clampDelta(deltaTime)
	if dir == types.DirLeft {
		e.X -= step
	} else {
		e.X += step
	}
	e.Animation.Advance()
	e.syncRect()
}

// PullDown 编队触边时整体下移
func (e *Enemy) PullDown(step float64) {
	e.Y += step
	e.syncRect()
}

// Texture 返回当前动画帧
func (e *Enemy) Texture() types.TextureID {
	return e.Animation.Texture()
}
