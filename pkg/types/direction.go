package types

// Direction 敌人编队的水平移动方向
// 整个编队共享同一个方向值
type Direction int

const (
	// DirLeft 向左移动
	DirLeft Direction = iota
	// DirRight 向右移动
	DirRight
)

// String 返回方向的字符串表示
func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// Side 飞碟的出现侧
type Side int

const (
	// SideLeft 从左侧出现，向右飞行
	SideLeft Side = iota
	// SideRight 从右侧出现，向左飞行
	SideRight
)

// String 返回出现侧的字符串表示
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}
