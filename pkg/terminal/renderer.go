package terminal

import (
	"image"
	"image/color"
	"math"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 填充字符
const (
	spriteRune = '█'
	lineRune   = '─'
)

// cellSprite 贴图在字符网格中的投影
type cellSprite struct {
	width, height float64
	style         tcell.Style
}

// Renderer 把逻辑坐标映射到字符网格的 game.Renderer 实现
//
// 每个单元格对应 cellWidth×cellHeight 个逻辑像素；贴图用其不透明像素的平均色填充覆盖的单元格。
type Renderer struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
	sprites    map[types.TextureID]cellSprite
	background tcell.Style
}

// NewRenderer 创建终端渲染器
// 资源管理器必须已经完成 LoadResources
func NewRenderer(screen tcell.Screen, rm *game.ResourceManager, cfg config.TerminalConfig) *Renderer {
	r := &Renderer{
		screen:     screen,
		cellWidth:  float64(cfg.CellWidth),
		cellHeight: float64(cfg.CellHeight),
		sprites:    make(map[types.TextureID]cellSprite),
		background: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
	for _, id := range rm.TextureIDs() {
		w, h := rm.TextureSize(id)
		r.sprites[id] = cellSprite{
			width:  w,
			height: h,
			style:  r.background.Foreground(toTcell(averageColor(rm.TextureImage(id)))),
		}
	}
	return r
}

// GridSize 逻辑画面对应的字符网格尺寸
func (r *Renderer) GridSize() (cols, rows int) {
	return int(math.Ceil(config.GameWindowWidth / r.cellWidth)), int(math.Ceil(config.GameWindowHeight / r.cellHeight))
}

// cell 逻辑坐标所在的单元格
func (r *Renderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x / r.cellWidth)), int(math.Floor(y / r.cellHeight))
}

// set 写入单元格，网格外的坐标被忽略
func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	cols, rows := r.GridSize()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// ClearBackground 清空屏幕
func (r *Renderer) ClearBackground(c color.Color) {
	r.background = tcell.StyleDefault.Background(toTcell(c))
	r.screen.Fill(' ', r.background)
}

// DrawSprite 填充贴图覆盖的所有单元格
func (r *Renderer) DrawSprite(id types.TextureID, x, y float64) {
	s, ok := r.sprites[id]
	if !ok {
		return
	}
	c0, r0 := r.cell(x, y)
	c1, r1 := r.cell(x+s.width-1, y+s.height-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(col, row, spriteRune, s.style)
		}
	}
}

// DrawText 在基线所在的单元格行绘制文字
func (r *Renderer) DrawText(text string, x, y, size float64, c color.Color, font types.FontID) {
	col, row := r.cell(x, y-1)
	style := r.background.Foreground(toTcell(c))
	for _, ch := range text {
		r.set(col, row, ch, style)
		col++
	}
}

// MeasureText 每个字符占一个单元格
func (r *Renderer) MeasureText(text string, size float64, font types.FontID) (float64, float64) {
	return float64(len([]rune(text))) * r.cellWidth, r.cellHeight
}

// DrawLine 沿直线逐格绘制
func (r *Renderer) DrawLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	style := r.background.Foreground(toTcell(c))
	c0, r0 := r.cell(x1, y1)
	c1, r1 := r.cell(x2, y2)

	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		r.set(c0, r0, lineRune, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c0 + int(math.Round(t*float64(c1-c0)))
		row := r0 + int(math.Round(t*float64(r1-r0)))
		r.set(col, row, lineRune, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// averageColor 不透明像素的平均色，没有不透明像素时返回白色
func averageColor(img image.Image) color.RGBA {
	if img == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	var sr, sg, sb, n uint64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca == 0 {
				continue
			}
			sr += uint64(cr >> 8)
			sg += uint64(cg >> 8)
			sb += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 255}
}

// toTcell 转换为 tcell 真彩色
func toTcell(c color.Color) tcell.Color {
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}

var _ game.Renderer = (*Renderer)(nil)
