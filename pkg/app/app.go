// Package app 提供 Ebitengine 桌面后端
//
// 该包把核心游戏（scenes.GameScene）接到 Ebitengine 的窗口、键盘、绘制和时钟上，
// 使其可以被桌面端（main.go）和移动端（mobile/mobile.go）共用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Version 窗口标题中显示的版本号
const Version = "1.0.0"

// Config 定义应用启动配置
type Config struct {
	// Game 应用配置（窗口、帧率、清理模式）
	Game *config.GameConfig
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，为0时使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	renderer     *Renderer
	input        *Input
	clock        *game.FixedClock
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}

	resourceManager, err := game.NewResourceManagerFromEmbedded()
	if err != nil {
		return nil, fmt.Errorf("资源管理器初始化失败: %w", err)
	}

	resources, err := resourceManager.LoadResources()
	if err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	renderer, err := NewRenderer(resourceManager)
	if err != nil {
		return nil, fmt.Errorf("渲染器初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	input := NewInput()
	clock := game.NewFixedClock(gameConfig.TPS)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(scenes.GameSceneOptions{
		Resources:   resources,
		Input:       input,
		Clock:       clock,
		Rand:        rand.New(rand.NewSource(seed)),
		LegacySweep: gameConfig.LegacySweep,
	}))

	log.Printf("[App] Initialized (tps=%d, seed=%d)", gameConfig.TPS, seed)

	return &App{
		sceneManager: sceneManager,
		renderer:     renderer,
		input:        input,
		clock:        clock,
		verbose:      cfg.Verbose,
	}, nil
}

// ApplyWindowConfig 应用窗口设置，需在 ebiten.RunGame 之前调用
func ApplyWindowConfig(w config.WindowConfig, tps int) {
	ebiten.SetWindowTitle(fmt.Sprintf("%s v%s", w.Title, Version))
	ebiten.SetWindowSize(int(float64(w.Width)*w.Scale), int(float64(w.Height)*w.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(w.VSync)
	ebiten.SetFullscreen(w.Fullscreen)
	ebiten.SetTPS(tps)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.clock.Tick()
	a.sceneManager.Update()
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.sceneManager.Draw(a.renderer)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 像素图使用最近邻滤波保持边缘清晰
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
