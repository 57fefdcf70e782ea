package components

// ColliderComponent 定义实体在 X/Z 平面上的圆形碰撞区域
//
// IsTrigger 为 true 时只报告重叠事件，不阻挡运动（拾取物即为触发器）。
type ColliderComponent struct {
	Radius    float64 // 碰撞半径（世界单位）
	IsTrigger bool    // 是否为触发器
}
