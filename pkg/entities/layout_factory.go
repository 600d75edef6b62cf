package entities

import (
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// formationRowTypes 三排敌人的类型，从上到下
var formationRowTypes = [3]types.EnemyType{types.EnemyE, types.EnemyA, types.EnemyB}

// NewEnemyFormation 生成三排敌人编队
// 每排从 x=80 到 x=600，间隔 70，共 8 个
func NewEnemyFormation(res *game.Resources) []*Enemy {
	enemies := make([]*Enemy, 0, 24)
	for row, enemyType := range formationRowTypes {
		y := config.FormationRowY[row]
		for x := config.FormationStartX; x <= config.FormationEndX; x += config.FormationStepX {
			enemies = append(enemies, NewEnemy(res, float64(x), y, enemyType))
		}
	}
	return enemies
}

// NewBlockLayout 生成三组 11×6 的障碍块
// 按行优先排列：每行依次填充三组
func NewBlockLayout(res *game.Resources) []*Block {
	blocks := make([]*Block, 0, 3*config.BlockClusterWidth*(config.BlockGridLastRow-config.BlockGridFirstRow+1))
	for row := config.BlockGridFirstRow; row <= config.BlockGridLastRow; row++ {
		for _, start := range config.BlockClusterStartColumns {
			for col := start; col < start+config.BlockClusterWidth; col++ {
				blocks = append(blocks, NewBlock(res, float64(col)*config.BlockSize, float64(row)*config.BlockSize))
			}
		}
	}
	return blocks
}
