package systems

import (
	"testing"

	"github.com/denix666/space-invaders/pkg/headless"
	"github.com/denix666/space-invaders/pkg/types"
)

func TestPlayerSystemUpdate(t *testing.T) {
	tests := []struct {
		name        string
		keys        []types.Key
		wantX       float64
		wantBullets int
	}{
		{"idle", nil, 320, 0},
		{"left", []types.Key{types.KeyLeft}, 316, 0},
		{"right", []types.Key{types.KeyRight}, 324, 0},
		{"fire with up", []types.Key{types.KeyUp}, 320, 1},
		{"fire with space", []types.Key{types.KeySpace}, 320, 1},
		{"move and fire", []types.Key{types.KeyLeft, types.KeySpace}, 316, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, _ := newTestWorld(t)
			input := headless.NewInput()
			for _, k := range tt.keys {
				input.Press(k)
			}

			NewPlayerSystem(world, input).Update(frame)

			if !almostEqual(world.Player.X, tt.wantX) {
				t.Errorf("player x = %v, want %v", world.Player.X, tt.wantX)
			}
			if len(world.Bullets) != tt.wantBullets {
				t.Errorf("bullets = %d, want %d", len(world.Bullets), tt.wantBullets)
			}
		})
	}
}

// TestPlayerSystemSingleBullet 按住开火键时不会连续发射
func TestPlayerSystemSingleBullet(t *testing.T) {
	world, _ := newTestWorld(t)
	input := headless.NewInput()
	input.Press(types.KeySpace)
	system := NewPlayerSystem(world, input)

	for i := 0; i < 10; i++ {
		system.Update(frame)
		input.EndFrame()
	}

	if len(world.Bullets) != 1 {
		t.Errorf("Expected exactly 1 bullet while held, got %d", len(world.Bullets))
	}
}
