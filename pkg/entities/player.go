package entities

import (
	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Player 玩家飞船，只能水平移动
// 包围盒尺寸取自贴图尺寸
type Player struct {
	X, Y    float64
	Rect    components.Rect
	texture types.TextureID
}

// NewPlayer 在初始位置创建玩家
func NewPlayer(res *game.Resources) *Player {
	w, h := res.TextureSize(res.Player)
	return &Player{
		X:       config.PlayerStartX,
		Y:       config.PlayerStartY,
		Rect:    components.NewRect(config.PlayerStartX, config.PlayerStartY, w, h),
		texture: res.Player,
	}
}

// Move 按方向移动，位置限制在 [PlayerMinX, PlayerMaxX]
func (p *Player) Move(dir types.Direction, deltaTime float64) {
	step := config.PlayerSpeed * clampDelta(deltaTime)
	if dir == types.DirLeft {
		p.X -= step
	} else {
		p.X += step
	}
	if p.X < config.PlayerMinX {
		p.X = config.PlayerMinX
	}
	if p.X > config.PlayerMaxX {
		p.X = config.PlayerMaxX
	}
	p.Rect.MoveTo(p.X, p.Y)
}

// ResetPosition 回到初始水平位置
func (p *Player) ResetPosition() {
	p.X = config.PlayerStartX
	p.Rect.MoveTo(p.X, p.Y)
}

// Bounds 返回当前包围盒
func (p *Player) Bounds() components.Rect {
	return p.Rect
}

// Position 返回左上角坐标
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// Texture 返回玩家贴图
func (p *Player) Texture() types.TextureID {
	return p.texture
}
