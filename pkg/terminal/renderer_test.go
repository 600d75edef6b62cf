package terminal

import (
	"image/color"
	"math/rand"
	"os"
	"testing"
	"testing/fstest"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/embedded"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/scenes"
	"github.com/denix666/space-invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// newTestScreen 创建与逻辑画面等大的模拟终端
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(70, 28)
	return screen
}

// newTestResourceManager 从仓库内置图集创建资源管理器
func newTestResourceManager(t *testing.T) (*game.ResourceManager, *game.Resources) {
	t.Helper()
	data, err := os.ReadFile("../../" + config.SpriteSheetPath)
	if err != nil {
		t.Fatalf("failed to read sprite sheet: %v", err)
	}
	embedded.Init(fstest.MapFS{config.SpriteSheetPath: &fstest.MapFile{Data: data}})
	rm, err := game.NewResourceManagerFromEmbedded()
	if err != nil {
		t.Fatalf("failed to create resource manager: %v", err)
	}
	res, err := rm.LoadResources()
	if err != nil {
		t.Fatalf("failed to load resources: %v", err)
	}
	return rm, res
}

func defaultTerminalConfig() config.TerminalConfig {
	return config.DefaultGameConfig().Terminal
}

func TestRendererGridSize(t *testing.T) {
	rm, _ := newTestResourceManager(t)
	r := NewRenderer(newTestScreen(t), rm, defaultTerminalConfig())

	cols, rows := r.GridSize()
	if cols != 70 || rows != 28 {
		t.Errorf("GridSize() = %dx%d, want 70x28", cols, rows)
	}
}

func TestRendererDrawSprite(t *testing.T) {
	rm, _ := newTestResourceManager(t)
	screen := newTestScreen(t)
	r := NewRenderer(screen, rm, defaultTerminalConfig())

	r.ClearBackground(color.Black)
	// 玩家 70x40 覆盖 7x2 个单元格
	r.DrawSprite(types.TexturePlayer, 320, 480)

	filled := 0
	for row := 0; row < 28; row++ {
		for col := 0; col < 70; col++ {
			ch, _, _, _ := screen.GetContent(col, row)
			if ch == spriteRune {
				filled++
			}
		}
	}
	if filled != 14 {
		t.Errorf("Expected 14 filled cells, got %d", filled)
	}
	if ch, _, _, _ := screen.GetContent(32, 24); ch != spriteRune {
		t.Errorf("Expected sprite at cell (32,24), got %q", ch)
	}

	// 网格外的绘制被忽略
	r.DrawSprite(types.TextureBullet, -100, -100)
	r.DrawSprite("unknown", 0, 0)
}

func TestRendererDrawText(t *testing.T) {
	rm, _ := newTestResourceManager(t)
	screen := newTestScreen(t)
	r := NewRenderer(screen, rm, defaultTerminalConfig())

	r.ClearBackground(color.Black)
	r.DrawText("SCORE:", 30, 545, 25, color.White, types.FontGame)

	want := "SCORE:"
	for i, expected := range want {
		ch, _, _, _ := screen.GetContent(3+i, 27)
		if ch != expected {
			t.Errorf("cell %d: got %q, want %q", i, ch, expected)
		}
	}

	w, h := r.MeasureText(want, 25, types.FontGame)
	if w != 60 || h != 20 {
		t.Errorf("MeasureText() = (%v, %v), want (60, 20)", w, h)
	}
}

func TestRendererDrawLine(t *testing.T) {
	rm, _ := newTestResourceManager(t)
	screen := newTestScreen(t)
	r := NewRenderer(screen, rm, defaultTerminalConfig())

	r.ClearBackground(color.Black)
	r.DrawLine(0, config.HUDLineY, config.GameWindowWidth, config.HUDLineY, 1, color.White)

	for col := 0; col < 70; col++ {
		if ch, _, _, _ := screen.GetContent(col, 26); ch != lineRune {
			t.Fatalf("cell %d: got %q, want line", col, ch)
		}
	}
}

func TestAverageColor(t *testing.T) {
	rm, _ := newTestResourceManager(t)

	// 障碍块是纯色
	got := averageColor(rm.TextureImage(types.TextureBlock))
	if got.A != 255 {
		t.Errorf("Expected opaque color, got %+v", got)
	}
	if white := averageColor(nil); white != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected white fallback, got %+v", white)
	}
}

func TestRunnerStep(t *testing.T) {
	rm, res := newTestResourceManager(t)
	screen := newTestScreen(t)
	keys := NewKeyTable(DefaultKeyRepeatDelay)
	clock := game.NewFixedClock(30)

	sm := game.NewSceneManager()
	scene := scenes.NewGameScene(scenes.GameSceneOptions{
		Resources: res,
		Input:     keys,
		Clock:     clock,
		Rand:      rand.New(rand.NewSource(1)),
	})
	sm.SwitchTo(scene)

	runner := NewRunner(screen, sm, keys, clock, NewRenderer(screen, rm, defaultTerminalConfig()), 30)

	runner.Step()
	if scene.Phase() != game.PhaseIntro {
		t.Fatalf("Expected intro, got %s", scene.Phase())
	}

	keys.Press(types.KeySpace)
	runner.Step()
	if scene.Phase() != game.PhaseInitLevel {
		t.Fatalf("Expected PhaseInitLevel after space, got %s", scene.Phase())
	}
	if clock.Now() <= 0 {
		t.Error("Expected clock to advance")
	}

	if runner.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should stop the loop")
	}
}
