package types

// TextureID 贴图句柄
// 实体只持有句柄，不持有图片本身；图片由 ResourceManager 统一加载和持有
type TextureID string

// FontID 字体句柄
type FontID string

// 固定贴图ID
const (
	TexturePlayer TextureID = "player"
	TextureBlock  TextureID = "block"
	TextureBullet TextureID = "bullet"
)

// UfoFrameCount 飞碟动画帧数
const UfoFrameCount = 5

// UfoFrameTextures 返回飞碟的动画贴图ID（ufo_0 ~ ufo_4）
func UfoFrameTextures() []TextureID {
	frames := make([]TextureID, 0, UfoFrameCount)
	for i := 0; i < UfoFrameCount; i++ {
		frames = append(frames, TextureID("ufo_"+string(rune('0'+i))))
	}
	return frames
}

// 字体ID
const (
	// FontGame 标题和提示文字
	FontGame FontID = "game_font"
	// FontMono 计分数字（等宽）
	FontMono FontID = "mono_font"
)

// Key 游戏关心的逻辑按键
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeySpace
)

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}
