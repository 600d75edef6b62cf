package components

import "testing"

// TestRectIntersects 测试包围盒相交判定
func TestRectIntersects(t *testing.T) {
	base := NewRect(100, 100, 50, 30)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"完全重叠", NewRect(100, 100, 50, 30), true},
		{"部分重叠", NewRect(140, 120, 20, 20), true},
		{"包含在内", NewRect(110, 110, 5, 5), true},
		{"右边缘相接", NewRect(150, 100, 10, 10), false},
		{"下边缘相接", NewRect(100, 130, 10, 10), false},
		{"左侧分离", NewRect(0, 100, 50, 30), false},
		{"上方分离", NewRect(100, 0, 50, 30), false},
		{"零宽度", NewRect(120, 110, 0, 10), false},
		{"零高度", NewRect(120, 110, 10, 0), false},
		{"零尺寸", NewRect(120, 110, 0, 0), false},
		{"负宽度", NewRect(130, 110, -10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// 相交判定必须对称
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRectMoveTo 测试包围盒移动
func TestRectMoveTo(t *testing.T) {
	r := NewRect(0, 0, 8, 15)
	r.MoveTo(25, 36)

	if r.X != 25 || r.Y != 36 {
		t.Errorf("Expected position (25,36), got (%v,%v)", r.X, r.Y)
	}
	if r.Right() != 33 || r.Bottom() != 51 {
		t.Errorf("Expected right/bottom (33,51), got (%v,%v)", r.Right(), r.Bottom())
	}
}
