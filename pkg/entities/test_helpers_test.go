package entities

import (
	"os"
	"testing"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/game"
)

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
