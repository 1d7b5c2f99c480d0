package components

// Point 二维坐标点
type Point struct {
	X, Y float64
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y float64 // 左上角坐标
	W, H float64 // 宽高
}

// MaxX 返回矩形右边界
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY 返回矩形下边界
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center 返回矩形中心点
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains 检测点是否在矩形内
// 左、上边界包含，右、下边界不包含，相邻矩形不会同时命中同一点
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() &&
		p.Y >= r.Y && p.Y < r.MaxY()
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
