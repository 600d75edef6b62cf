// invaders-tty 在终端中运行游戏
//
// 从仓库根目录运行（读取 data/ 下的配置和像素图集）：
//
//	go run ./cmd/invaders-tty
//	go run ./cmd/invaders-tty --log invaders.log --verbose
//
// 方向键或 A/D 移动，↑ / W / 空格 开火，空格确认，Esc / Ctrl+C / q 退出。
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/embedded"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/scenes"
	"github.com/denix666/space-invaders/pkg/terminal"
	"github.com/gdamore/tcell/v2"
)

var (
	// 命令行参数
	dataDir    = flag.String("data", ".", "包含 data/ 目录的根路径")
	configPath = flag.String("config", "", "应用配置文件路径（默认使用 data/game.yaml）")
	verbose    = flag.Bool("verbose", false, "输出详细调试日志（需配合 --log）")
	logPath    = flag.String("log", "", "日志文件路径（终端被游戏占用，日志默认丢弃）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	logFile := setupLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		// 屏幕已关闭，错误输出到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("invaders-tty: %v", err)
	}
}

// setupLogging 终端由游戏占用，日志只能写入文件
func setupLogging() *os.File {
	if *logPath == "" || !*verbose {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("无法打开日志文件: %v", err)
	}
	log.SetOutput(f)
	return f
}

func run() error {
	embedded.Init(os.DirFS(*dataDir))

	gameConfig, err := config.ResolveGameConfig(*configPath)
	if err != nil {
		return err
	}

	rm, err := game.NewResourceManagerFromEmbedded()
	if err != nil {
		return err
	}
	resources, err := rm.LoadResources()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	keys := terminal.NewKeyTable(time.Duration(gameConfig.Terminal.RepeatDelayMs) * time.Millisecond)
	clock := game.NewFixedClock(gameConfig.Terminal.TPS)
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(scenes.GameSceneOptions{
		Resources:   resources,
		Input:       keys,
		Clock:       clock,
		Rand:        rand.New(rand.NewSource(s)),
		LegacySweep: gameConfig.LegacySweep,
	}))

	renderer := terminal.NewRenderer(screen, rm, gameConfig.Terminal)
	runner := terminal.NewRunner(screen, sceneManager, keys, clock, renderer, gameConfig.Terminal.TPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runner.Run(ctx)
}
