package systems

import (
	"image/color"
	"strconv"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
)

// 界面颜色
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorHUDLine    = color.RGBA{R: 127, G: 106, B: 79, A: 255} // 棕色分隔线
	ColorLabel      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorValue      = color.RGBA{R: 255, G: 161, B: 0, A: 255} // 橙色数值和提示
)

// RenderSystem 通过 Renderer 绘制场景、计分栏和提示文字
//
// 只读取 World 和 Session，不修改任何状态。
type RenderSystem struct {
	world   *entities.World
	session *game.Session
	res     *game.Resources
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(world *entities.World, session *game.Session, res *game.Resources) *RenderSystem {
	return &RenderSystem{
		world:   world,
		session: session,
		res:     res,
	}
}

// Clear 清屏
func (s *RenderSystem) Clear(r game.Renderer) {
	r.ClearBackground(ColorBackground)
}

// DrawHUD 绘制底部计分栏
func (s *RenderSystem) DrawHUD(r game.Renderer) {
	r.DrawLine(0, config.HUDLineY, config.GameWindowWidth, config.HUDLineY, 1, ColorHUDLine)

	size := config.HUDFontSize
	y := config.HUDTextY
	r.DrawText("SCORE:", config.HUDScoreLabelX, y, size, ColorLabel, s.res.Font)
	r.DrawText(strconv.Itoa(s.session.Score), config.HUDScoreValueX, y, size, ColorValue, s.res.MonoFont)
	r.DrawText("LIVES:", config.HUDLivesLabelX, y, size, ColorLabel, s.res.Font)
	r.DrawText(strconv.Itoa(s.session.Lives), config.HUDLivesValueX, y, size, ColorValue, s.res.MonoFont)
	r.DrawText("HI-SCORE:", config.HUDHiLabelX, y, size, ColorLabel, s.res.Font)
	r.DrawText(strconv.Itoa(s.session.HiScore), config.HUDHiValueX, y, size, ColorValue, s.res.MonoFont)
}

// DrawPlayer 绘制玩家
func (s *RenderSystem) DrawPlayer(r game.Renderer) {
	p := s.world.Player
	r.DrawSprite(p.Texture(), p.X, p.Y)
}

// DrawEnemies 绘制未销毁的敌人
func (s *RenderSystem) DrawEnemies(r game.Renderer) {
	for _, e := range s.world.Enemies {
		if !e.Destroyed {
			r.DrawSprite(e.Texture(), e.X, e.Y)
		}
	}
}

// DrawBlocks 绘制未销毁的障碍块
func (s *RenderSystem) DrawBlocks(r game.Renderer) {
	for _, b := range s.world.Blocks {
		if !b.Destroyed {
			r.DrawSprite(b.Texture(), b.X, b.Y)
		}
	}
}

// DrawProjectiles 绘制子弹、炸弹和第一个飞碟
func (s *RenderSystem) DrawProjectiles(r game.Renderer) {
	if b := s.world.ActiveBullet(); b != nil {
		r.DrawSprite(b.Texture(), b.X, b.Y)
	}
	for _, b := range s.world.Bombs {
		if !b.Destroyed {
			r.DrawSprite(b.Texture(), b.X, b.Y)
		}
	}
	if u := s.world.ActiveUfo(); u != nil {
		r.DrawSprite(u.Texture(), u.X, u.Y)
	}
}

// DrawScene 绘制完整的游戏画面
func (s *RenderSystem) DrawScene(r game.Renderer) {
	s.DrawHUD(r)
	s.DrawPlayer(r)
	s.DrawProjectiles(r)
	s.DrawEnemies(r)
	s.DrawBlocks(r)
}

// DrawBanner 绘制大标题和一行提示
func (s *RenderSystem) DrawBanner(r game.Renderer, header, message string) {
	r.DrawText(header, config.BannerHeaderX, config.BannerHeaderY, config.BannerHeaderSz, ColorValue, s.res.Font)
	r.DrawText(message, config.BannerMessageX, config.BannerMessageY, config.BannerMessageSz, ColorValue, s.res.Font)
}

// DrawCentered 水平居中绘制一行文字
func (s *RenderSystem) DrawCentered(r game.Renderer, text string, y, size float64, c color.Color) {
	w, _ := r.MeasureText(text, size, s.res.Font)
	r.DrawText(text, (config.GameWindowWidth-w)/2, y, size, c, s.res.Font)
}

// DrawTitle 绘制标题画面
func (s *RenderSystem) DrawTitle(r game.Renderer) {
	s.DrawCentered(r, "SPACE INVADERS", config.BannerHeaderY, config.BannerHeaderSz, ColorValue)
	s.DrawCentered(r, "press 'space' to start", config.BannerMessageY, config.BannerMessageSz, ColorLabel)
	if s.session.HiScore > 0 {
		s.DrawCentered(r, "HI-SCORE: "+strconv.Itoa(s.session.HiScore), config.MissionBannerY, config.BannerMessageSz, ColorValue)
	}
}

// DrawMissionBanner 绘制关卡开始提示
func (s *RenderSystem) DrawMissionBanner(r game.Renderer) {
	s.DrawBanner(r, "MISSION "+strconv.Itoa(s.session.Mission), "press 'space' to begin")
}
