package entities

import (
	"testing"

	"github.com/denix666/space-invaders/pkg/types"
)

// TestEnemyFormationLayout 测试编队布局
func TestEnemyFormationLayout(t *testing.T) {
	res := newTestResources(t)
	enemies := NewEnemyFormation(res)

	if len(enemies) != 24 {
		t.Fatalf("Expected 24 enemies, got %d", len(enemies))
	}

	tests := []struct {
		index int
		x, y  float64
		typ   types.EnemyType
	}{
		{0, 80, 80, types.EnemyE},
		{7, 570, 80, types.EnemyE},
		{8, 80, 130, types.EnemyA},
		{23, 570, 180, types.EnemyB},
	}
	for _, tt := range tests {
		e := enemies[tt.index]
		if e.X != tt.x || e.Y != tt.y || e.Type != tt.typ {
			t.Errorf("enemy %d: got (%v,%v,%s), want (%v,%v,%s)", tt.index, e.X, e.Y, e.Type, tt.x, tt.y, tt.typ)
		}
	}
}

// TestBlockLayout 测试障碍块布局
func TestBlockLayout(t *testing.T) {
	res := newTestResources(t)
	blocks := NewBlockLayout(res)

	if len(blocks) != 198 {
		t.Fatalf("Expected 198 blocks, got %d", len(blocks))
	}

	minX, maxX, minY, maxY := 1e9, -1e9, 1e9, -1e9
	for _, b := range blocks {
		if b.X < minX {
			minX = b.X
		}
		if b.X > maxX {
			maxX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.Y > maxY {
			maxY = b.Y
		}
		inCluster := (b.X >= 100 && b.X <= 200) || (b.X >= 300 && b.X <= 400) || (b.X >= 500 && b.X <= 600)
		if !inCluster {
			t.Errorf("block at x=%v outside clusters", b.X)
		}
	}
	if minX != 100 || maxX != 600 || minY != 400 || maxY != 450 {
		t.Errorf("Unexpected block extent x[%v,%v] y[%v,%v]", minX, maxX, minY, maxY)
	}
}

// TestWorldFire 同一时刻只能有一颗子弹
func TestWorldFire(t *testing.T) {
	res := newTestResources(t)
	w := NewWorld(res)

	if !w.CanFire() {
		t.Fatal("Expected CanFire with no bullets")
	}
	if !w.Fire() {
		t.Fatal("Expected first Fire to succeed")
	}
	b := w.ActiveBullet()
	if b == nil || b.X != w.Player.X+32 || b.Y != w.Player.Y {
		t.Fatalf("Unexpected bullet %+v", b)
	}

	if w.Fire() {
		t.Error("Expected Fire to be a no-op while a bullet is live")
	}
	if len(w.Bullets) != 1 {
		t.Errorf("Expected 1 bullet, got %d", len(w.Bullets))
	}

	// 子弹已销毁但尚未清理：允许再次开火
	b.Destroy()
	if !w.CanFire() {
		t.Error("Expected CanFire once the bullet is destroyed")
	}
	if w.ActiveBullet() != nil {
		t.Error("Expected no active bullet")
	}
}

// TestWorldActiveUfo 只有第一个飞碟参与处理
func TestWorldActiveUfo(t *testing.T) {
	res := newTestResources(t)
	w := NewWorld(res)

	if w.ActiveUfo() != nil {
		t.Fatal("Expected nil ufo on empty collection")
	}

	first := w.SpawnUfo(types.SideLeft)
	w.SpawnUfo(types.SideRight)
	if w.ActiveUfo() != first {
		t.Error("Expected index 0 to be active")
	}

	first.Destroy()
	if w.ActiveUfo() != nil {
		t.Error("Expected nil while index 0 is destroyed")
	}
}

// TestWorldRegenerate 测试重新生成与清空临时实体
func TestWorldRegenerate(t *testing.T) {
	res := newTestResources(t)
	w := NewWorld(res)

	w.Fire()
	w.SpawnBomb(w.Enemies[0], types.BombBlue)
	w.SpawnUfo(types.SideLeft)
	w.Enemies = w.Enemies[:3]
	w.Blocks = nil
	w.Direction = types.DirRight

	w.ClearTransients()
	if len(w.Bullets)+len(w.Bombs)+len(w.Ufos) != 0 {
		t.Error("Expected transients cleared")
	}

	w.Regenerate()
	if len(w.Enemies) != 24 || len(w.Blocks) != 198 {
		t.Errorf("Expected full layout, got %d enemies and %d blocks", len(w.Enemies), len(w.Blocks))
	}
	if w.Direction != types.DirLeft {
		t.Errorf("Expected direction reset to left, got %s", w.Direction)
	}
}

// TestSpawnBombOffset 炸弹在敌人位置偏移 (+25, +36) 处生成
func TestSpawnBombOffset(t *testing.T) {
	res := newTestResources(t)
	w := NewWorld(res)

	e := w.Enemies[5]
	bomb := w.SpawnBomb(e, types.BombRed)
	if bomb.X != e.X+25 || bomb.Y != e.Y+36 {
		t.Errorf("Expected bomb at (%v,%v), got (%v,%v)", e.X+25, e.Y+36, bomb.X, bomb.Y)
	}
	if len(w.LiveEnemies()) != 24 {
		t.Errorf("Expected 24 live enemies, got %d", len(w.LiveEnemies()))
	}
}
