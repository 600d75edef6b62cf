package app

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// faceKey 按字体和字号缓存字形
type faceKey struct {
	font types.FontID
	size float64
}

// Renderer 基于 Ebitengine 的 game.Renderer 实现
//
// 贴图在创建时一次性转换为 ebiten.Image；文字坐标是基线，绘制时换算为左上角。
type Renderer struct {
	target  *ebiten.Image
	images  map[types.TextureID]*ebiten.Image
	sources map[types.FontID]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewRenderer 从资源管理器创建渲染器
// 资源管理器必须已经完成 LoadResources
func NewRenderer(rm *game.ResourceManager) (*Renderer, error) {
	r := &Renderer{
		images:  make(map[types.TextureID]*ebiten.Image),
		sources: make(map[types.FontID]*text.GoTextFaceSource),
		faces:   make(map[faceKey]*text.GoTextFace),
	}

	for _, id := range rm.TextureIDs() {
		img := rm.TextureImage(id)
		if img == nil {
			return nil, fmt.Errorf("texture %q not loaded", id)
		}
		r.images[id] = ebiten.NewImageFromImage(img)
	}

	for _, id := range []types.FontID{types.FontGame, types.FontMono} {
		data := rm.FontData(id)
		if data == nil {
			return nil, fmt.Errorf("font %q not loaded", id)
		}
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %q: %w", id, err)
		}
		r.sources[id] = source
	}

	log.Printf("[Renderer] %d textures, %d fonts", len(r.images), len(r.sources))
	return r, nil
}

// SetTarget 设置本帧的绘制目标
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

// face 返回缓存的字形
func (r *Renderer) face(font types.FontID, size float64) *text.GoTextFace {
	key := faceKey{font: font, size: size}
	if f, ok := r.faces[key]; ok {
		return f
	}
	source, ok := r.sources[font]
	if !ok {
		source = r.sources[types.FontGame]
	}
	f := &text.GoTextFace{Source: source, Size: size}
	r.faces[key] = f
	return f
}

// ClearBackground 用纯色填充画面
func (r *Renderer) ClearBackground(c color.Color) {
	r.target.Fill(c)
}

// DrawSprite 在 (x, y) 绘制贴图，未知贴图被忽略
func (r *Renderer) DrawSprite(id types.TextureID, x, y float64) {
	img, ok := r.images[id]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.target.DrawImage(img, op)
}

// DrawText 以 (x, y) 为基线起点绘制文字
func (r *Renderer) DrawText(s string, x, y, size float64, c color.Color, font types.FontID) {
	f := r.face(font, size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.target, s, f, op)
}

// MeasureText 返回文字的宽高
func (r *Renderer) MeasureText(s string, size float64, font types.FontID) (float64, float64) {
	return text.Measure(s, r.face(font, size), 0)
}

// DrawLine 绘制直线
func (r *Renderer) DrawLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	vector.StrokeLine(r.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), c, false)
}

var _ game.Renderer = (*Renderer)(nil)
