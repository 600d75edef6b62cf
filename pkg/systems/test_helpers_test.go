package systems

import (
	"os"
	"testing"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/entities"
	"github.com/denix666/space-invaders/pkg/game"
)

const frame = 1.0 / 60.0

// newTestResources 从仓库内置图集加载资源表
func newTestResources(t *testing.T) *game.Resources {
	t.Helper()
	data, err := os.ReadFile("../../" + config.SpriteSheetPath)
	if err != nil {
		t.Fatalf("failed to read sprite sheet: %v", err)
	}
	sheet, err := config.LoadSpriteSheet(data)
	if err != nil {
		t.Fatalf("failed to parse sprite sheet: %v", err)
	}
	res, err := game.NewResourceManager(sheet).LoadResources()
	if err != nil {
		t.Fatalf("failed to load resources: %v", err)
	}
	return res
}

// newTestWorld 创建完整布局的世界和新会话
func newTestWorld(t *testing.T) (*entities.World, *game.Session) {
	t.Helper()
	return entities.NewWorld(newTestResources(t)), game.NewSession()
}

// place 把实体移动到指定位置并同步包围盒
func place(m *entities.MovableEntity, x, y float64) {
	m.X, m.Y = x, y
	m.Rect.MoveTo(x, y)
}
