package game

import (
	"log"

	"github.com/denix666/space-invaders/pkg/config"
)

// Session 保存一局游戏的可变数据
// 由 GameScene 独占持有，以指针形式传给各个状态处理函数和系统
type Session struct {
	Score       int     // 当前得分
	HiScore     int     // 本次运行的最高分，跨关卡和新游戏保留
	Lives       int     // 剩余生命
	Mission     int     // 当前关卡（从1开始）
	EnemySpeed  float64 // 敌人速度（原版每帧像素数）
	NextBonusAt int     // 下一次奖励生命的分数线
}

// NewSession 创建新会话，最高分为0
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset 开始新游戏：重置得分、生命、关卡和速度，保留最高分
func (s *Session) Reset() {
	s.Score = 0
	s.Lives = config.InitialLives
	s.Mission = 1
	s.EnemySpeed = config.EnemySpeedForMission(s.Mission)
	s.NextBonusAt = config.BonusLifeStep
}

// AddScore 加分并同步最高分和奖励生命
func (s *Session) AddScore(points int) {
	s.Score += points
	s.syncHiScore()
	s.checkBonusLife()
}

// syncHiScore 保证 HiScore >= Score
func (s *Session) syncHiScore() {
	if s.Score > s.HiScore {
		s.HiScore = s.Score
	}
}

// checkBonusLife 每越过一条分数线奖励一条命
// 分数线只前进不后退，同一条线不会重复奖励
func (s *Session) checkBonusLife() {
	for s.Score >= s.NextBonusAt {
		s.Lives++
		s.NextBonusAt += config.BonusLifeStep
		log.Printf("[Session] bonus life at %d, lives=%d", s.Score, s.Lives)
	}
}

// LoseLife 扣除一条命，生命为0时不再扣除
// 返回是否实际扣除
func (s *Session) LoseLife() bool {
	if s.Lives <= 0 {
		return false
	}
	s.Lives--
	return true
}

// AdvanceMission 进入下一关并重新计算敌人速度
func (s *Session) AdvanceMission() {
	s.Mission++
	s.EnemySpeed = config.EnemySpeedForMission(s.Mission)
}

// SpeedUp 编队下压时敌人加速
func (s *Session) SpeedUp() {
	s.EnemySpeed += config.EnemySpeedPerPullDown
}
