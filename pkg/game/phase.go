package game

// Phase 游戏状态机的状态标签
// 每个状态对应 GameScene 中的一个处理函数
type Phase int

const (
	// PhaseIntro 标题画面
	PhaseIntro Phase = iota
	// PhaseInitLevel 关卡准备：显示编队与关卡提示，等待确认
	PhaseInitLevel
	// PhaseGame 正在游戏
	PhaseGame
	// PhaseLevelFail 被炸弹击中，等待确认后继续
	PhaseLevelFail
	// PhasePaused 暂停（当前没有任何逻辑会进入该状态）
	PhasePaused
	// PhaseLevelCompleted 消灭全部敌人，等待确认进入下一关
	PhaseLevelCompleted
	// PhaseGameOver 游戏结束，等待确认重新开始
	PhaseGameOver
)

// String 返回状态名称
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseInitLevel:
		return "InitLevel"
	case PhaseGame:
		return "Game"
	case PhaseLevelFail:
		return "LevelFail"
	case PhasePaused:
		return "Paused"
	case PhaseLevelCompleted:
		return "LevelCompleted"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Severity 返回结局的严重程度
// 同一帧出现多个结局时取最严重的：GameOver > LevelFail > LevelCompleted
func (p Phase) Severity() int {
	switch p {
	case PhaseGameOver:
		return 3
	case PhaseLevelFail:
		return 2
	case PhaseLevelCompleted:
		return 1
	default:
		return 0
	}
}

// MostSevere 返回两个结局中更严重的一个
func MostSevere(a, b Phase) Phase {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}
