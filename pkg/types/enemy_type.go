// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EnemyType 定义敌人的类型
// 类型只影响贴图，不影响行为
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota
	// EnemyE 第一排敌人（贴图前缀 "e"）
	EnemyE
	// EnemyA 第二排敌人（贴图前缀 "a"）
	EnemyA
	// EnemyB 第三排敌人（贴图前缀 "b"）
	EnemyB
)

// String 返回敌人类型的贴图前缀
func (e EnemyType) String() string {
	switch e {
	case EnemyE:
		return "e"
	case EnemyA:
		return "a"
	case EnemyB:
		return "b"
	default:
		return "unknown"
	}
}

// FrameTextures 返回该敌人类型的两帧动画贴图ID
func (e EnemyType) FrameTextures() []TextureID {
	prefix := "enemy_" + e.String()
	return []TextureID{
		TextureID(prefix + "_1"),
		TextureID(prefix + "_2"),
	}
}

// BombType 定义炸弹的类型（仅外观）
type BombType int

const (
	// BombRed 红色炸弹
	BombRed BombType = iota
	// BombGreen 绿色炸弹
	BombGreen
	// BombBlue 蓝色炸弹
	BombBlue

	// BombTypeCount 炸弹类型数量，用于随机选择
	BombTypeCount = 3
)

// String 返回炸弹类型的贴图前缀
func (b BombType) String() string {
	switch b {
	case BombRed:
		return "red"
	case BombGreen:
		return "green"
	case BombBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// FrameTextures 返回该炸弹类型的两帧动画贴图ID
func (b BombType) FrameTextures() []TextureID {
	prefix := "bomb_" + b.String()
	return []TextureID{
		TextureID(prefix + "_1"),
		TextureID(prefix + "_2"),
	}
}
