package game

import "github.com/denix666/space-invaders/pkg/types"

// textureSize 贴图像素尺寸
type textureSize struct {
	width  float64
	height float64
}

// Resources 启动时加载一次的只读资源表
// 实体构造函数通过指针共享同一份资源表，实体只持有其中的句柄
type Resources struct {
	Player types.TextureID
	Block  types.TextureID
	Bullet types.TextureID

	Enemies map[types.EnemyType][]types.TextureID // 敌人类型 -> 动画帧
	Bombs   map[types.BombType][]types.TextureID  // 炸弹类型 -> 动画帧
	Ufo     []types.TextureID                     // 飞碟动画帧

	Font     types.FontID // 标题和提示文字
	MonoFont types.FontID // 计分数字

	sizes map[types.TextureID]textureSize
}

// TextureSize 返回贴图尺寸，未知贴图返回0
func (r *Resources) TextureSize(id types.TextureID) (width, height float64) {
	size := r.sizes[id]
	return size.width, size.height
}
