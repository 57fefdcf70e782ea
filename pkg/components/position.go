package components

import "github.com/go-gl/mathgl/mgl64"

// PositionComponent 存储实体在世界坐标中的位置
//
// 坐标系与物理引擎一致：X 向右，Y 向上，Z 向前（屏幕上方）。
// 游戏在 X/Z 平面上运行，Y 恒为 0。
type PositionComponent struct {
	Position mgl64.Vec3
}
