package entities

import (
	"log"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
)

// World 持有所有实体集合
// 集合是有序切片：碰撞检测按顺序进行，清理时保持幸存者的相对顺序
type World struct {
	res *game.Resources

	Player  *Player
	Enemies []*Enemy
	Blocks  []*Block
	Bullets []*Bullet
	Bombs   []*Bomb
	Ufos    []*Ufo

	// Direction 编队共享的移动方向
	Direction types.Direction
}

// NewWorld 创建完整布局的世界：玩家、编队和障碍块
func NewWorld(res *game.Resources) *World {
	w := &World{
		res:    res,
		Player: NewPlayer(res),
	}
	w.Regenerate()
	return w
}

// Resources 返回共享资源表
func (w *World) Resources() *game.Resources {
	return w.res
}

// Regenerate 重新生成编队和障碍块，编队方向重置为向左
func (w *World) Regenerate() {
	w.Enemies = NewEnemyFormation(w.res)
	w.Blocks = NewBlockLayout(w.res)
	w.Direction = types.DirLeft
	log.Printf("[World] regenerated %d enemies and %d blocks", len(w.Enemies), len(w.Blocks))
}

// ClearTransients 清空子弹、炸弹和飞碟
func (w *World) ClearTransients() {
	w.Bullets = nil
	w.Bombs = nil
	w.Ufos = nil
}

// CanFire 没有未销毁的子弹时才能开火
func (w *World) CanFire() bool {
	for _, b := range w.Bullets {
		if !b.Destroyed {
			return false
		}
	}
	return true
}

// Fire 从玩家位置发射子弹，已有子弹时不做任何事
// 返回是否发射成功
func (w *World) Fire() bool {
	if !w.CanFire() {
		return false
	}
	w.Bullets = append(w.Bullets, NewBullet(w.res, w.Player.X+config.BulletOffsetX, w.Player.Y))
	return true
}

// ActiveBullet 返回唯一的活动子弹，没有时返回 nil
func (w *World) ActiveBullet() *Bullet {
	for _, b := range w.Bullets {
		if !b.Destroyed {
			return b
		}
	}
	return nil
}

// ActiveUfo 返回集合中第一个飞碟（仅第一个参与更新、绘制和碰撞）
// 集合为空或第一个已销毁时返回 nil
func (w *World) ActiveUfo() *Ufo {
	if len(w.Ufos) == 0 || w.Ufos[0].Destroyed {
		return nil
	}
	return w.Ufos[0]
}

// LiveEnemies 返回未销毁的敌人
func (w *World) LiveEnemies() []*Enemy {
	live := make([]*Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if !e.Destroyed {
			live = append(live, e)
		}
	}
	return live
}

// SpawnBomb 在敌人位置偏移处生成炸弹
func (w *World) SpawnBomb(enemy *Enemy, bombType types.BombType) *Bomb {
	bomb := NewBomb(w.res, enemy.X+config.BombOffsetX, enemy.Y+config.BombOffsetY, bombType)
	w.Bombs = append(w.Bombs, bomb)
	return bomb
}

// SpawnUfo 在指定侧生成飞碟
func (w *World) SpawnUfo(side types.Side) *Ufo {
	ufo := NewUfo(w.res, side)
	w.Ufos = append(w.Ufos, ufo)
	return ufo
}
