package app

import (
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyMap 逻辑按键到 Ebitengine 按键的映射
var keyMap = map[types.Key][]ebiten.Key{
	types.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	types.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	types.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	types.KeySpace: {ebiten.KeySpace},
}

// Input 基于 Ebitengine 的 game.Input 实现
//
// 同时支持键盘和触摸（移动端）：屏幕左三分之一为左移，右三分之一为右移，
// 中间为开火；任意位置的新触摸视为确认。
type Input struct{}

// NewInput 创建输入
func NewInput() *Input {
	return &Input{}
}

// IsKeyDown 按键当前处于按下状态
func (in *Input) IsKeyDown(key types.Key) bool {
	for _, k := range keyMap[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		if zone, ok := touchZone(x); ok && zone == key {
			return true
		}
	}
	return false
}

// IsKeyPressed 按键在本 tick 刚被按下
func (in *Input) IsKeyPressed(key types.Key) bool {
	for _, k := range keyMap[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}

	if key == types.KeySpace {
		return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}
	return false
}

// touchZone 触摸点横坐标对应的逻辑按键
func touchZone(x int) (types.Key, bool) {
	third := config.GameWindowWidth / 3
	switch {
	case x < 0 || x >= config.GameWindowWidth:
		return 0, false
	case x < third:
		return types.KeyLeft, true
	case x >= config.GameWindowWidth-third:
		return types.KeyRight, true
	default:
		return types.KeyUp, true
	}
}

var _ game.Input = (*Input)(nil)
