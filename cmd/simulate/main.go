// simulate 无窗口运行游戏循环并打印状态变化
//
// 用于在没有显示器的环境中检查游戏逻辑，从仓库根目录运行：
//
//	go run ./cmd/simulate --frames 20000 --seed 42 --fire-every 20
//
// 模拟玩家在出现确认提示时按空格，并按固定间隔开火、左右往返移动。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/embedded"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/headless"
	"github.com/denix666/space-invaders/pkg/scenes"
	"github.com/denix666/space-invaders/pkg/types"
)

var (
	// 命令行参数
	dataDir      = flag.String("data", ".", "包含 data/ 目录的根路径")
	frames       = flag.Int("frames", 60*60*5, "模拟的帧数")
	seed         = flag.Int64("seed", 1, "随机种子")
	fireEvery    = flag.Int("fire-every", 15, "每隔多少帧按一次开火键（0 表示不开火）")
	confirmAfter = flag.Int("confirm-after", 30, "提示出现多少帧后按空格确认")
	legacySweep  = flag.Bool("legacy-sweep", false, "每帧每个集合只清理一个已销毁实体")
	verbose      = flag.Bool("verbose", false, "显示详细调试日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	embedded.Init(os.DirFS(*dataDir))

	rm, err := game.NewResourceManagerFromEmbedded()
	if err != nil {
		return err
	}
	resources, err := rm.LoadResources()
	if err != nil {
		return err
	}

	input := headless.NewInput()
	clock := headless.NewClock(1.0 / config.ReferenceFPS)
	renderer := headless.NewRenderer()
	scene := scenes.NewGameScene(scenes.GameSceneOptions{
		Resources:   resources,
		Input:       input,
		Clock:       clock,
		Rand:        rand.New(rand.NewSource(*seed)),
		LegacySweep: *legacySweep,
	})

	p := newPilot(*fireEvery, *confirmAfter)
	phase := scene.Phase()
	report(out, 0, scene)

	for i := 1; i <= *frames; i++ {
		p.drive(input, scene)

		scene.Update()
		renderer.Reset()
		scene.Draw(renderer)

		input.EndFrame()
		clock.Advance()

		if scene.Phase() != phase {
			phase = scene.Phase()
			report(out, i, scene)
		}
	}

	s := scene.Session()
	fmt.Fprintf(out, "done: %d frames, final phase %s, score %d, hi-score %d\n", *frames, phase, s.Score, s.HiScore)
	return nil
}

// report 打印一行状态
func report(out io.Writer, frame int, scene *scenes.GameScene) {
	s := scene.Session()
	fmt.Fprintf(out, "%7d  %-15s score=%d lives=%d mission=%d hi=%d\n",
		frame, scene.Phase(), s.Score, s.Lives, s.Mission, s.HiScore)
}

// pilot 脚本化的玩家
type pilot struct {
	fireEvery    int
	confirmAfter int
	frame        int
	waiting      int // 当前提示已显示的帧数
	dir          types.Key
}

func newPilot(fireEvery, confirmAfter int) *pilot {
	return &pilot{fireEvery: fireEvery, confirmAfter: confirmAfter, dir: types.KeyLeft}
}

// drive 根据当前状态设置本帧按键
func (p *pilot) drive(input *headless.Input, scene *scenes.GameScene) {
	p.frame++
	input.Release(types.KeySpace)
	input.Release(types.KeyUp)
	input.Release(types.KeyLeft)
	input.Release(types.KeyRight)

	if scene.Phase() != game.PhaseGame {
		p.waiting++
		if p.waiting >= p.confirmAfter {
			input.Press(types.KeySpace)
			p.waiting = 0
		}
		return
	}
	p.waiting = 0

	// 在左右边界之间往返
	player := scene.World().Player
	if player.X <= config.PlayerMinX {
		p.dir = types.KeyRight
	} else if player.X >= config.PlayerMaxX {
		p.dir = types.KeyLeft
	}
	input.Press(p.dir)

	if p.fireEvery > 0 && p.frame%p.fireEvery == 0 {
		input.Press(types.KeyUp)
	}
}
