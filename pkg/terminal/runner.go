package terminal

import (
	"context"
	"log"
	"time"

	"github.com/denix666/space-invaders/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// Runner 终端游戏循环
type Runner struct {
	screen   tcell.Screen
	scenes   *game.SceneManager
	keys     *KeyTable
	clock    *game.FixedClock
	renderer *Renderer
	tps      int
}

// NewRunner 创建终端循环，clock 应与场景使用同一个时钟
func NewRunner(screen tcell.Screen, scenes *game.SceneManager, keys *KeyTable, clock *game.FixedClock, renderer *Renderer, tps int) *Runner {
	if tps < 1 {
		tps = 30
	}
	return &Runner{
		screen:   screen,
		scenes:   scenes,
		keys:     keys,
		clock:    clock,
		renderer: renderer,
		tps:      tps,
	}
}

// Run 运行游戏循环，直到 ctx 取消或玩家退出
// 调用方负责 screen.Init 和 screen.Fini
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go r.pollEvents(ctx, events)

	ticker := time.NewTicker(time.Second / time.Duration(r.tps))
	defer ticker.Stop()

	log.Printf("[Terminal] loop started at %d tps", r.tps)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[Terminal] loop stopped: %v", ctx.Err())
			return nil

		case ev := <-events:
			if !r.handleEvent(ev) {
				log.Printf("[Terminal] quit requested")
				return nil
			}

		case <-ticker.C:
			r.Step()
		}
	}
}

// Step 执行一帧：提交按键、推进时钟、更新并绘制
func (r *Runner) Step() {
	r.keys.BeginFrame()
	r.clock.Tick()
	r.scenes.Update()
	r.scenes.Draw(r.renderer)
	r.screen.Show()
}

// pollEvents 在独立 goroutine 中读取终端事件
func (r *Runner) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// 屏幕已关闭
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		if key, ok := MapKey(ev); ok {
			r.keys.Press(key)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}
