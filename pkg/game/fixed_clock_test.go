package game

import (
	"math"
	"testing"
)

func TestFixedClock(t *testing.T) {
	tests := []struct {
		name      string
		tps       int
		ticks     int
		wantNow   float64
		wantDelta float64
	}{
		{"60 tps", 60, 120, 2.0, 1.0 / 60.0},
		{"30 tps", 30, 45, 1.5, 1.0 / 30.0},
		{"invalid tps falls back to 60", 0, 60, 1.0, 1.0 / 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFixedClock(tt.tps)
			if c.Now() != 0 {
				t.Fatalf("Expected clock to start at 0, got %v", c.Now())
			}
			for i := 0; i < tt.ticks; i++ {
				c.Tick()
			}
			if math.Abs(c.Now()-tt.wantNow) > 1e-9 {
				t.Errorf("Now() = %v, want %v", c.Now(), tt.wantNow)
			}
			if math.Abs(float64(c.FrameDelta())-tt.wantDelta) > 1e-6 {
				t.Errorf("FrameDelta() = %v, want %v", c.FrameDelta(), tt.wantDelta)
			}
		})
	}
}
