package components

import "github.com/go-gl/mathgl/mgl64"

// ForceApplier 是可以施加力的物理刚体能力
// 移动系统只依赖这个接口，测试时无需完整的物理模拟
type ForceApplier interface {
	AddForce(force mgl64.Vec3)
}

// RigidbodyComponent 物理模拟刚体
// 每个物理步累积的力在积分后清零（与 ForceMode.Force 语义一致）
type RigidbodyComponent struct {
	Velocity mgl64.Vec3 // 当前速度（单位/秒）
	Force    mgl64.Vec3 // 本物理步累积的力
	Mass     float64    // 质量，必须大于 0
	Drag     float64    // 线性阻尼系数（每秒）
}

// AddForce 叠加一个力，在下一次积分时生效
func (rb *RigidbodyComponent) AddForce(force mgl64.Vec3) {
	rb.Force = rb.Force.Add(force)
}

// ClearForce 清除累积的力
func (rb *RigidbodyComponent) ClearForce() {
	rb.Force = mgl64.Vec3{}
}
