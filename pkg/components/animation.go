package components

import "github.com/denix666/space-invaders/pkg/types"

// AnimationComponent 管理逐帧动画
// 动画按更新次数计数，不按时间计数
type AnimationComponent struct {
	Frames       []types.TextureID // 动画的所有帧贴图
	FrameSpeed   int               // 切帧阈值：计数器超过该值时切到下一帧
	FrameCounter int               // 当前帧计数器
	CurrentFrame int               // 当前显示的帧索引(0-based)
}

// NewAnimationComponent 创建循环动画
func NewAnimationComponent(frames []types.TextureID, frameSpeed int) AnimationComponent {
	return AnimationComponent{
		Frames:     frames,
		FrameSpeed: frameSpeed,
	}
}

// Advance 推进一次动画计数
func (a *AnimationComponent) Advance() {
	if len(a.Frames) == 0 {
		return
	}
	a.FrameCounter++
	if a.FrameCounter > a.FrameSpeed {
		a.FrameCounter = 0
		a.CurrentFrame = (a.CurrentFrame + 1) % len(a.Frames)
	}
}

// Texture 返回当前帧的贴图ID，无帧时返回空ID
func (a *AnimationComponent) Texture() types.TextureID {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.CurrentFrame]
}
