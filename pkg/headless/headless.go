// Package headless 提供无窗口的渲染、输入和时钟实现
//
// 用于脚本化模拟（cmd/simulate）和测试：渲染调用只被记录，
// 输入由脚本控制，时钟以固定步长推进。
package headless

import (
	"image/color"
	"strings"

	"github.com/denix666/space-invaders/pkg/types"
)

// DrawnSprite 一次贴图绘制记录
type DrawnSprite struct {
	ID   types.TextureID
	X, Y float64
}

// DrawnText 一次文字绘制记录
type DrawnText struct {
	Text string
	X, Y float64
	Size float64
	Font types.FontID
}

// Renderer 记录绘制调用的渲染器
type Renderer struct {
	Clears  int
	Sprites []DrawnSprite
	Texts   []DrawnText
	Lines   int
}

// NewRenderer 创建记录渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Reset 清空记录，通常在每帧开始时调用
func (r *Renderer) Reset() {
	r.Clears = 0
	r.Sprites = r.Sprites[:0]
	r.Texts = r.Texts[:0]
	r.Lines = 0
}

// ClearBackground 记录清屏
func (r *Renderer) ClearBackground(c color.Color) {
	r.Clears++
}

// DrawSprite 记录贴图绘制
func (r *Renderer) DrawSprite(id types.TextureID, x, y float64) {
	r.Sprites = append(r.Sprites, DrawnSprite{ID: id, X: x, Y: y})
}

// DrawText 记录文字绘制
func (r *Renderer) DrawText(text string, x, y, size float64, c color.Color, font types.FontID) {
	r.Texts = append(r.Texts, DrawnText{Text: text, X: x, Y: y, Size: size, Font: font})
}

// MeasureText 按每字符半个字号估算文字尺寸
func (r *Renderer) MeasureText(text string, size float64, font types.FontID) (float64, float64) {
	return float64(len(text)) * size * 0.5, size
}

// DrawLine 记录画线
func (r *Renderer) DrawLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	r.Lines++
}

// HasText 是否绘制过包含 s 的文字
func (r *Renderer) HasText(s string) bool {
	for _, t := range r.Texts {
		if strings.Contains(t.Text, s) {
			return true
		}
	}
	return false
}

// SpriteCount 统计指定前缀贴图的绘制次数
func (r *Renderer) SpriteCount(prefix string) int {
	n := 0
	for _, s := range r.Sprites {
		if strings.HasPrefix(string(s.ID), prefix) {
			n++
		}
	}
	return n
}

// Input 脚本控制的输入
// Press 的按键在下一次 EndFrame 前同时处于按下和刚按下状态
type Input struct {
	down    map[types.Key]bool
	pressed map[types.Key]bool
}

// NewInput 创建无按键状态的输入
func NewInput() *Input {
	return &Input{
		down:    make(map[types.Key]bool),
		pressed: make(map[types.Key]bool),
	}
}

// Press 在本帧按下按键
func (in *Input) Press(key types.Key) {
	if !in.down[key] {
		in.pressed[key] = true
	}
	in.down[key] = true
}

// Release 松开按键
func (in *Input) Release(key types.Key) {
	in.down[key] = false
}

// EndFrame 清除本帧的刚按下状态
func (in *Input) EndFrame() {
	for k := range in.pressed {
		delete(in.pressed, k)
	}
}

// IsKeyDown 实现 game.Input
func (in *Input) IsKeyDown(key types.Key) bool {
	return in.down[key]
}

// IsKeyPressed 实现 game.Input
func (in *Input) IsKeyPressed(key types.Key) bool {
	return in.pressed[key]
}

// Clock 固定步长时钟
type Clock struct {
	now  float64
	step float64
}

// NewClock 创建从0开始、每帧前进 step 秒的时钟
func NewClock(step float64) *Clock {
	return &Clock{step: step}
}

// Advance 前进一帧
func (c *Clock) Advance() {
	c.now += c.step
}

// Set 直接设置当前时刻
func (c *Clock) Set(now float64) {
	c.now = now
}

// Now 实现 game.Clock
func (c *Clock) Now() float64 {
	return c.now
}

// FrameDelta 实现 game.Clock
func (c *Clock) FrameDelta() float32 {
	return float32(c.step)
}
