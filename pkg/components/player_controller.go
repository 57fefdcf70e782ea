package components

// PlayerControllerComponent 标记由人脸追踪控制的玩家实体
type PlayerControllerComponent struct {
	// Speed 力的缩放系数（对应 Inspector 中的 speed）
	Speed float64
}

// PickupCounterComponent 玩家已拾取的数量与胜利状态
//
// Count 只增不减，仅在关卡重新初始化时归零；Won 一旦为 true 不再回退。
type PickupCounterComponent struct {
	Count int
	Won   bool
}
