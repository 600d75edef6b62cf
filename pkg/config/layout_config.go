package config

// 布局与玩法常量
// 本文件定义了游戏画面尺寸、实体尺寸、速度和计分规则
// 这些数值是固定的，不通过配置文件修改（难度只由关卡公式决定）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 700

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 550

	// ReferenceFPS 原版按帧移动的参考帧率
	// 按帧移动的速度乘以该值换算为每秒像素
	ReferenceFPS = 60.0

	// MaxDeltaTime 单帧最大时间步长，防止卡顿后实体瞬移
	MaxDeltaTime = 0.1
)

// Player Configuration (玩家配置)
const (
	PlayerStartX = 320.0
	PlayerStartY = 480.0

	// PlayerMinX / PlayerMaxX 玩家水平移动边界
	PlayerMinX = 0.0
	PlayerMaxX = 630.0

	// PlayerSpeed 玩家移动速度（像素/秒），原版每帧 4 像素
	PlayerSpeed = 4.0 * ReferenceFPS

	// BulletOffsetX 子弹相对玩家位置的发射偏移
	BulletOffsetX = 32.0
)

// Projectile Configuration (弹药配置)
const (
	BulletWidth  = 6.0
	BulletHeight = 11.0
	// BulletSpeed 子弹上升速度（像素/秒）
	BulletSpeed = 300.0

	BombWidth  = 8.0
	BombHeight = 15.0
	// BombSpeed 炸弹下落速度（像素/秒）
	BombSpeed = 300.0
	// BombMaxY 炸弹超过该Y坐标即销毁
	BombMaxY = 500.0

	// BombOffsetX / BombOffsetY 炸弹相对投弹敌人的偏移
	BombOffsetX = 25.0
	BombOffsetY = 36.0
)

// Animation Configuration (动画配置)
// 阈值单位为帧：计数器超过阈值后切换到下一帧
const (
	BombAnimationSpeed  = 9
	EnemyAnimationSpeed = 11
	UfoAnimationSpeed   = 7
)

// Formation Configuration (敌人编队配置)
const (
	EnemyWidth  = 50.0
	EnemyHeight = 30.0

	// EnemyInitSpeed 敌人基础速度（原版每帧像素数）
	EnemyInitSpeed = 0.7

	// EnemySpeedPerMission 每关增加的敌人速度
	EnemySpeedPerMission = 0.2

	// EnemySpeedPerPullDown 每次编队下压增加的敌人速度
	EnemySpeedPerPullDown = 0.2

	// PullDownStep 编队触边时整体下移的距离
	PullDownStep = 12.0

	// FormationMinX / FormationMaxX 编队转向边界
	FormationMinX = 0.0
	FormationMaxX = 650.0

	// FormationStartX / FormationEndX / FormationStepX 每排敌人的水平布局
	FormationStartX = 80
	FormationEndX   = 600
	FormationStepX  = 70
)

// FormationRowY 三排敌人的Y坐标
var FormationRowY = [3]float64{80.0, 130.0, 180.0}

// Block Configuration (障碍块配置)
const (
	BlockSize = 10.0

	// BlockGridFirstRow / BlockGridLastRow 障碍块行号范围（乘以 BlockSize 得到Y坐标）
	BlockGridFirstRow = 40
	BlockGridLastRow  = 45

	// BlockClusterWidth 每组障碍块的列数
	BlockClusterWidth = 11
)

// BlockClusterStartColumns 三组障碍块的起始列号（乘以 BlockSize 得到X坐标）
var BlockClusterStartColumns = [3]int{10, 30, 50}

// Ufo Configuration (飞碟配置)
const (
	UfoWidth  = 100.0
	UfoHeight = 20.0
	UfoY      = 10.0

	// UfoLeftSpawnX 从左侧出现时的起始X
	UfoLeftSpawnX = -200.0
	// UfoRightSpawnX 从右侧出现时的起始X
	UfoRightSpawnX = 700.0

	// UfoSpeed 飞碟飞行速度（像素/秒），原版每帧 3 像素
	UfoSpeed = 3.0 * ReferenceFPS
)

// Spawn Timing Configuration (生成计时配置)
const (
	// BombMinInterval 两次投弹之间的最短间隔（秒）
	BombMinInterval = 0.6
	// BombMaxExtraDelay 随机附加延迟上限（秒）
	BombMaxExtraDelay = 40.0
	// UfoSpawnInterval 飞碟生成间隔（秒）
	UfoSpawnInterval = 7.0
)

// Scoring Configuration (计分配置)
const (
	ScoreBombHit  = 5
	ScoreEnemyHit = 10
	ScoreUfoHit   = 100

	// BonusLifeStep 每获得该分数奖励一条命
	BonusLifeStep = 1000

	// InitialLives 新游戏的生命数
	InitialLives = 3
)

// HUD Configuration (界面配置)
const (
	HUDLineY        = 525.0
	HUDTextY        = 545.0
	HUDFontSize     = 25.0
	HUDScoreLabelX  = 30.0
	HUDScoreValueX  = 155.0
	HUDHiLabelX     = 450.0
	HUDHiValueX     = 620.0
	HUDLivesLabelX  = 250.0
	HUDLivesValueX  = 345.0
	BannerHeaderX   = 57.0
	BannerHeaderY   = 240.0
	BannerHeaderSz  = 70.0
	BannerMessageX  = 60.0
	BannerMessageY  = 280.0
	BannerMessageSz = 20.0
	MissionBannerY  = 330.0
)

// EnemySpeedForMission 返回指定关卡的敌人初始速度
func EnemySpeedForMission(mission int) float64 {
	return EnemyInitSpeed + float64(mission)*EnemySpeedPerMission
}
