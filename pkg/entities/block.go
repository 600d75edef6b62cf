package entities

import (
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// Block 静态障碍块，任何碰撞都会将其销毁
type Block struct {
	MovableEntity
	texture types.TextureID
}

// NewBlock 创建位于 (x, y) 的障碍块
func NewBlock(res *game.Resources, x, y float64) *Block {
	return &Block{
		MovableEntity: newMovable(x, y, config.BlockSize, config.BlockSize),
		texture:       res.Block,
	}
}

// Texture 返回障碍块贴图
func (b *Block) Texture() types.TextureID {
	return b.texture
}
