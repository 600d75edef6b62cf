// Package entities 定义游戏中的全部实体及其每帧更新逻辑
//
// 实体是带有少量行为的数据：位置、包围盒、销毁标记和可选动画。
// 销毁标记由碰撞结算或边界检测写入，由帧末清理系统消费。
package entities

import (
	"github.com/denix666/space-invaders/pkg/components"
	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/types"
)

// MovableEntity 所有实体的公共部分
type MovableEntity struct {
	X, Y      float64
	Rect      components.Rect
	Destroyed bool
}

// newMovable 创建位于 (x, y) 的实体，包围盒尺寸固定
func newMovable(x, y, width, height float64) MovableEntity {
	return MovableEntity{
		X:    x,
		Y:    y,
		Rect: components.NewRect(x, y, width, height),
	}
}

// Destroy 标记实体为已销毁
func (m *MovableEntity) Destroy() {
	m.Destroyed = true
}

// IsDestroyed 返回实体是否已销毁
func (m *MovableEntity) IsDestroyed() bool {
	return m.Destroyed
}

// Bounds 返回当前包围盒
func (m *MovableEntity) Bounds() components.Rect {
	return m.Rect
}

// syncRect 根据当前位置重新计算包围盒
func (m *MovableEntity) syncRect() {
	m.Rect.MoveTo(m.X, m.Y)
}

// Sprite 可绘制实体
type Sprite interface {
	Position() (x, y float64)
	Texture() types.TextureID
}

// Position 返回实体左上角坐标
func (m *MovableEntity) Position() (float64, float64) {
	return m.X, m.Y
}

// clampDelta 限制单帧时间步长
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}
