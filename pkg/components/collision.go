package components

// Rect 轴对齐包围盒（AABB）
// 原点在左上角，每次实体更新时根据位置重新计算
type Rect struct {
	X      float64 // 左上角X坐标（像素）
	Y      float64 // 左上角Y坐标（像素）
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// NewRect 创建包围盒
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MoveTo 将包围盒移动到新位置，尺寸不变
func (r *Rect) MoveTo(x, y float64) {
	r.X = x
	r.Y = y
}

// Right 返回右边缘X坐标
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom 返回下边缘Y坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects 检查两个包围盒是否有非空交集
// 仅边缘相接不算碰撞
// 宽或高不大于0的包围盒与任何包围盒都不相交
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}
