package systems

import (
	"math"

	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// ArenaBounds 场地边界（以原点为中心的矩形，X/Z 平面）
// HalfWidth 或 HalfDepth 为 0 表示该方向没有墙
type ArenaBounds struct {
	HalfWidth float64
	HalfDepth float64
}

// RigidbodySystem 积分刚体运动
//
// 每个物理步：
//  1. v += F / m * dt
//  2. v *= max(0, 1 - drag * dt)
//  3. p += v * dt（Y 轴锁定为 0）
//  4. 碰到场地墙壁时停在墙内并清零该方向速度
//  5. 清除累积的力
type RigidbodySystem struct {
	entityManager *ecs.EntityManager
	bounds        ArenaBounds
}

// NewRigidbodySystem 创建刚体系统
func NewRigidbodySystem(em *ecs.EntityManager, bounds ArenaBounds) *RigidbodySystem {
	return &RigidbodySystem{
		entityManager: em,
		bounds:        bounds,
	}
}

// Update 推进一个物理步
func (s *RigidbodySystem) Update(deltaTime float64) {
	bodies := ecs.GetEntitiesWith2[*components.RigidbodyComponent, *components.PositionComponent](s.entityManager)

	for _, id := range bodies {
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if rb.Mass > 0 {
			rb.Velocity = rb.Velocity.Add(rb.Force.Mul(deltaTime / rb.Mass))
		}
		if rb.Drag > 0 {
			rb.Velocity = rb.Velocity.Mul(math.Max(0, 1-rb.Drag*deltaTime))
		}
		rb.Velocity[1] = 0

		pos.Position = pos.Position.Add(rb.Velocity.Mul(deltaTime))
		pos.Position[1] = 0

		radius := 0.0
		if col, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok && !col.IsTrigger {
			radius = col.Radius
		}
		s.keepInside(pos, rb, radius)

		rb.ClearForce()
	}
}

// keepInside 把实体限制在场地内
func (s *RigidbodySystem) keepInside(pos *components.PositionComponent, rb *components.RigidbodyComponent, radius float64) {
	if s.bounds.HalfWidth > 0 {
		limit := math.Max(0, s.bounds.HalfWidth-radius)
		if pos.Position[0] > limit {
			pos.Position[0] = limit
			rb.Velocity[0] = 0
		} else if pos.Position[0] < -limit {
			pos.Position[0] = -limit
			rb.Velocity[0] = 0
		}
	}
	if s.bounds.HalfDepth > 0 {
		limit := math.Max(0, s.bounds.HalfDepth-radius)
		if pos.Position[2] > limit {
			pos.Position[2] = limit
			rb.Velocity[2] = 0
		} else if pos.Position[2] < -limit {
			pos.Position[2] = -limit
			rb.Velocity[2] = 0
		}
	}
}
