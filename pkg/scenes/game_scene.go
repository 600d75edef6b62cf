package scenes

import (
	"log"
	"math/rand"

	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/systems"
	"github.com/denix666/space-invaders/pkg/types"
)

// GameScene represents the whole game: title screen, missions and game over.
// It owns the session data and the entity world, drives the phase state machine
// once per frame and runs the cleanup pass at the end of every frame.
type GameScene struct {
	input game.Input
	clock game.Clock

	session *game.Session
	world   *entities.World
	phase   game.Phase

	// Systems
	playerSystem     *systems.PlayerSystem
	formationSystem  *systems.FormationSystem
	projectileSystem *systems.ProjectileSystem
	bombSpawnSystem  *systems.BombSpawnSystem
	ufoSpawnSystem   *systems.UfoSpawnSystem
	combatSystem     *systems.CombatSystem
	cleanupSystem    *systems.CleanupSystem
	renderSystem     *systems.RenderSystem
}

// GameSceneOptions 创建 GameScene 所需的外部协作者
type GameSceneOptions struct {
	Resources *game.Resources
	Input     game.Input
	Clock     game.Clock
	// Rand 投弹和飞碟的随机源，为 nil 时使用时间种子
	Rand *rand.Rand
	// LegacySweep 每帧每个集合只清理一个已销毁实体
	LegacySweep bool
}

// NewGameScene creates the game scene in the Intro phase.
func NewGameScene(opts GameSceneOptions) *GameScene {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(opts.Clock.Now()*1e6) + 1))
	}

	session := game.NewSession()
	world := entities.NewWorld(opts.Resources)

	s := &GameScene{
		input:   opts.Input,
		clock:   opts.Clock,
		session: session,
		world:   world,

		playerSystem:     systems.NewPlayerSystem(world, opts.Input),
		formationSystem:  systems.NewFormationSystem(world, session),
		projectileSystem: systems.NewProjectileSystem(world),
		bombSpawnSystem:  systems.NewBombSpawnSystem(world, opts.Clock, rng),
		ufoSpawnSystem:   systems.NewUfoSpawnSystem(world, opts.Clock, rng),
		combatSystem:     systems.NewCombatSystem(world, session),
		cleanupSystem:    systems.NewCleanupSystem(world, opts.LegacySweep),
		renderSystem:     systems.NewRenderSystem(world, session, opts.Resources),
	}

	s.phase = game.PhaseIntro
	s.enter(game.PhaseIntro)
	log.Printf("[GameScene] Initialized (legacySweep=%v)", opts.LegacySweep)
	return s
}

// Phase 返回当前状态
func (s *GameScene) Phase() game.Phase {
	return s.phase
}

// Session 返回会话数据（只读使用）
func (s *GameScene) Session() *game.Session {
	return s.session
}

// World 返回实体世界
func (s *GameScene) World() *entities.World {
	return s.world
}

// Update 执行当前状态的逻辑，状态变化时执行新状态的进入动作，最后清理已销毁实体
func (s *GameScene) Update() {
	next := s.handle(s.phase)
	if next != s.phase {
		log.Printf("[GameScene] phase %s -> %s", s.phase, next)
		s.phase = next
		s.enter(next)
	}
	s.cleanupSystem.Update()
}

// confirmed 确认键（空格）本帧刚按下
func (s *GameScene) confirmed() bool {
	return s.input.IsKeyPressed(types.KeySpace)
}

// enter 执行状态的进入动作，每次进入只执行一次
func (s *GameScene) enter(phase game.Phase) {
	switch phase {
	case game.PhaseIntro:
		s.session.Reset()
	case game.PhaseInitLevel:
		s.bombSpawnSystem.Reset()
		s.ufoSpawnSystem.Reset()
		s.world.Player.ResetPosition()
	}
}

// handle 分派到当前状态的处理函数，返回下一状态
func (s *GameScene) handle(phase game.Phase) game.Phase {
	switch phase {
	case game.PhaseIntro:
		return s.updateIntro()
	case game.PhaseInitLevel:
		return s.updateInitLevel()
	case game.PhaseGame:
		return s.updateGame()
	case game.PhaseLevelFail:
		return s.updateLevelFail()
	case game.PhasePaused:
		return s.updatePaused()
	case game.PhaseLevelCompleted:
		return s.updateLevelCompleted()
	case game.PhaseGameOver:
		return s.updateGameOver()
	default:
		log.Printf("[GameScene] unknown phase %d, back to intro", phase)
		return game.PhaseIntro
	}
}

func (s *GameScene) updateIntro() game.Phase {
	if s.confirmed() {
		return game.PhaseInitLevel
	}
	return game.PhaseIntro
}

func (s *GameScene) updateInitLevel() game.Phase {
	if s.confirmed() {
		return game.PhaseGame
	}
	return game.PhaseInitLevel
}

// updateGame 完整的一帧：生成、移动、结算
func (s *GameScene) updateGame() game.Phase {
	deltaTime := float64(s.clock.FrameDelta())

	s.bombSpawnSystem.Update()
	s.ufoSpawnSystem.Update()

	s.playerSystem.Update(deltaTime)
	s.formationSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)

	return s.combatSystem.Resolve()
}

func (s *GameScene) updateLevelFail() game.Phase {
	if !s.confirmed() {
		return game.PhaseLevelFail
	}
	s.session.LoseLife()
	s.world.Player.ResetPosition()
	s.world.ClearTransients()
	s.bombSpawnSystem.Reset()
	s.ufoSpawnSystem.Reset()
	log.Printf("[GameScene] retry mission %d, lives=%d", s.session.Mission, s.session.Lives)
	return game.PhaseGame
}

func (s *GameScene) updatePaused() game.Phase {
	if s.confirmed() {
		return game.PhaseGame
	}
	return game.PhasePaused
}

func (s *GameScene) updateLevelCompleted() game.Phase {
	if !s.confirmed() {
		return game.PhaseLevelCompleted
	}
	s.world.Player.ResetPosition()
	s.world.ClearTransients()
	s.world.Regenerate()
	s.session.AdvanceMission()
	log.Printf("[GameScene] mission %d, enemy speed %.1f", s.session.Mission, s.session.EnemySpeed)
	return game.PhaseInitLevel
}

func (s *GameScene) updateGameOver() game.Phase {
	if !s.confirmed() {
		return game.PhaseGameOver
	}
	log.Printf("[GameScene] new game, final score %d, hi-score %d", s.session.Score, s.session.HiScore)
	s.session.Reset()
	s.world.ClearTransients()
	s.world.Regenerate()
	s.world.Player.ResetPosition()
	return game.PhaseInitLevel
}

// Draw renders the current phase.
func (s *GameScene) Draw(r game.Renderer) {
	rs := s.renderSystem
	rs.Clear(r)

	switch s.phase {
	case game.PhaseIntro:
		rs.DrawTitle(r)
	case game.PhaseInitLevel:
		rs.DrawHUD(r)
		rs.DrawPlayer(r)
		rs.DrawEnemies(r)
		rs.DrawBlocks(r)
		rs.DrawMissionBanner(r)
	case game.PhaseGame:
		rs.DrawScene(r)
	case game.PhaseLevelFail:
		rs.DrawScene(r)
		rs.DrawBanner(r, "LEVEL FAIL", "press 'space' to continue")
	case game.PhasePaused:
		rs.DrawScene(r)
		rs.DrawBanner(r, "PAUSED", "press 'space' to continue")
	case game.PhaseLevelCompleted:
		rs.DrawHUD(r)
		rs.DrawPlayer(r)
		rs.DrawBlocks(r)
		rs.DrawBanner(r, "MISSION COMPLETED", "press 'space' to continue")
	case game.PhaseGameOver:
		rs.DrawScene(r)
		rs.DrawBanner(r, "GAME OVER", "press 'space' to start a new game")
	}
}
