package systems

import (
	"github.com/denix666/space-invaders/pkg/entities"
)

// destroyable 可被清理的实体
type destroyable interface {
	IsDestroyed() bool
}

// CleanupSystem 帧末清理已销毁的实体
//
// 默认模式移除全部已销毁实体；旧版模式每帧每个集合只移除第一个。
// 两种模式都保持幸存者的相对顺序。
type CleanupSystem struct {
	world       *entities.World
	legacySweep bool
}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem(world *entities.World, legacySweep bool) *CleanupSystem {
	return &CleanupSystem{
		world:       world,
		legacySweep: legacySweep,
	}
}

// Update 清理五个实体集合
func (s *CleanupSystem) Update() {
	w := s.world
	w.Enemies = sweep(w.Enemies, s.legacySweep)
	w.Blocks = sweep(w.Blocks, s.legacySweep)
	w.Bullets = sweep(w.Bullets, s.legacySweep)
	w.Bombs = sweep(w.Bombs, s.legacySweep)
	w.Ufos = sweep(w.Ufos, s.legacySweep)
}

// sweep 原地移除已销毁实体并保持顺序
func sweep[T destroyable](items []T, firstOnly bool) []T {
	if firstOnly {
		for i, item := range items {
			if item.IsDestroyed() {
				copy(items[i:], items[i+1:])
				var zero T
				items[len(items)-1] = zero
				return items[:len(items)-1]
			}
		}
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	// 释放尾部引用
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
