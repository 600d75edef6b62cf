package systems

import (
	"log"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
)

// CombatSystem 碰撞与战斗结算
//
// 所有检测都是包围盒重叠，使用本帧已更新的包围盒。结算顺序固定：
//  1. 炸弹 vs 玩家
//  2. 炸弹 vs 子弹
//  3. 飞碟（仅第一个）vs 子弹
//  4. 敌人：越过玩家线 / vs 子弹 / vs 玩家
//  5. 障碍块 vs 敌人
//  6. 障碍块 vs 子弹
//  7. 障碍块 vs 炸弹
//
// 上一帧已销毁的实体不参与检测。
type CombatSystem struct {
	world   *entities.World
	session *game.Session
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(world *entities.World, session *game.Session) *CombatSystem {
	return &CombatSystem{
		world:   world,
		session: session,
	}
}

// Resolve 执行一帧的碰撞结算，返回下一状态
// 没有结局时返回 PhaseGame；多个结局同时出现时取最严重的
func (s *CombatSystem) Resolve() game.Phase {
	w := s.world
	player := w.Player
	outcome := game.PhaseGame

	// 1. 炸弹击中玩家
	for _, bomb := range w.Bombs {
		if bomb.Destroyed || !bomb.Rect.Intersects(player.Rect) {
			continue
		}
		bomb.Destroy()
		if s.session.Lives > 0 {
			outcome = game.MostSevere(outcome, game.PhaseLevelFail)
		} else {
			outcome = game.MostSevere(outcome, game.PhaseGameOver)
		}
		log.Printf("[CombatSystem] player hit by bomb, lives=%d", s.session.Lives)
	}

	// 2. 子弹击落炸弹
	for _, bomb := range w.Bombs {
		bullet := w.ActiveBullet()
		if bullet == nil {
			break
		}
		if bomb.Destroyed || !bomb.Rect.Intersects(bullet.Rect) {
			continue
		}
		bomb.Destroy()
		bullet.Destroy()
		s.session.AddScore(config.ScoreBombHit)
	}

	// 3. 子弹击中飞碟
	if ufo, bullet := w.ActiveUfo(), w.ActiveBullet(); ufo != nil && bullet != nil {
		if ufo.Rect.Intersects(bullet.Rect) {
			ufo.Destroy()
			bullet.Destroy()
			s.session.AddScore(config.ScoreUfoHit)
			log.Printf("[CombatSystem] ufo destroyed, score=%d", s.session.Score)
		}
	}

	// 4. 敌人
	for _, enemy := range w.Enemies {
		if enemy.Destroyed {
			continue
		}
		if enemy.Rect.Bottom() > player.Y {
			outcome = game.MostSevere(outcome, game.PhaseGameOver)
			log.Printf("[CombatSystem] formation reached the player line")
		}
		if bullet := w.ActiveBullet(); bullet != nil && enemy.Rect.Intersects(bullet.Rect) {
			enemy.Destroy()
			bullet.Destroy()
			s.session.AddScore(config.ScoreEnemyHit)
			continue
		}
		if enemy.Rect.Intersects(player.Rect) {
			outcome = game.MostSevere(outcome, game.PhaseGameOver)
			log.Printf("[CombatSystem] enemy collided with player")
		}
	}

	// 5-7. 障碍块
	// 子弹和炸弹在这一阶段开始时确定，与每个障碍块逐一检测，
	// 跨在两列之间的子弹或炸弹会同时打掉两个块
	bullet := w.ActiveBullet()
	bombs := make([]*entities.Bomb, 0, len(w.Bombs))
	for _, bomb := range w.Bombs {
		if !bomb.Destroyed {
			bombs = append(bombs, bomb)
		}
	}
	for _, block := range w.Blocks {
		if block.Destroyed {
			continue
		}
		for _, enemy := range w.Enemies {
			if !enemy.Destroyed && block.Rect.Intersects(enemy.Rect) {
				block.Destroy()
			}
		}
		if bullet != nil && block.Rect.Intersects(bullet.Rect) {
			block.Destroy()
			bullet.Destroy()
		}
		for _, bomb := range bombs {
			if block.Rect.Intersects(bomb.Rect) {
				block.Destroy()
				bomb.Destroy()
			}
		}
	}

	if len(w.Enemies) == 0 {
		outcome = game.MostSevere(outcome, game.PhaseLevelCompleted)
	}

	return outcome
}
