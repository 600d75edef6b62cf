package main

import (
	"flag"
	"log"

	"github.com/denix666/space-invaders/pkg/app"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "应用配置文件路径（默认使用内置 data/game.yaml）")
	verbose := flag.Bool("verbose", false, "显示详细调试日志")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameConfig, err := config.ResolveGameConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Game:    gameConfig,
		Verbose: *verbose || gameConfig.Verbose,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	app.ApplyWindowConfig(gameConfig.Window, gameConfig.TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
