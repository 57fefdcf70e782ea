package systems

import (
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// TriggerListener 接收触发器进入事件
//
// self 是移动的刚体实体，other 是被进入的触发器实体。
type TriggerListener interface {
	OnTriggerEnter(self, other ecs.EntityID)
}

// triggerPair 一对正在重叠的实体
type triggerPair struct {
	body    ecs.EntityID
	trigger ecs.EntityID
}

// TriggerSystem 检测刚体进入触发器
//
// 在 X/Z 平面上做圆形重叠检测。一次重叠只报告一次进入，
// 直到分离（或触发器被停用）后才会再次报告。未激活的实体不参与检测。
type TriggerSystem struct {
	entityManager *ecs.EntityManager
	listeners     []TriggerListener
	overlapping   map[triggerPair]bool
}

// NewTriggerSystem 创建触发检测系统
func NewTriggerSystem(em *ecs.EntityManager) *TriggerSystem {
	return &TriggerSystem{
		entityManager: em,
		overlapping:   make(map[triggerPair]bool),
	}
}

// AddListener 注册触发事件监听器
func (s *TriggerSystem) AddListener(listener TriggerListener) {
	s.listeners = append(s.listeners, listener)
}

// Update 检测本物理步新产生的重叠
func (s *TriggerSystem) Update(deltaTime float64) {
	colliders := ecs.GetEntitiesWith2[*components.ColliderComponent, *components.PositionComponent](s.entityManager)

	bodies := make([]ecs.EntityID, 0, 1)
	triggers := make([]ecs.EntityID, 0, len(colliders))
	for _, id := range colliders {
		if !s.isActive(id) {
			continue
		}
		col, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)
		if col.IsTrigger {
			triggers = append(triggers, id)
		} else if ecs.HasComponent[*components.RigidbodyComponent](s.entityManager, id) {
			bodies = append(bodies, id)
		}
	}

	current := make(map[triggerPair]bool, len(s.overlapping))
	for _, bodyID := range bodies {
		for _, triggerID := range triggers {
			if !s.overlaps(bodyID, triggerID) {
				continue
			}
			pair := triggerPair{body: bodyID, trigger: triggerID}
			current[pair] = true
			if s.overlapping[pair] {
				continue
			}

			for _, l := range s.listeners {
				// 前一个监听器可能已停用了其中一方
				if !s.isActive(bodyID) || !s.isActive(triggerID) {
					break
				}
				l.OnTriggerEnter(bodyID, triggerID)
			}
		}
	}
	s.overlapping = current
}

// isActive 没有 ActiveComponent 的实体视为激活
func (s *TriggerSystem) isActive(id ecs.EntityID) bool {
	if !s.entityManager.Exists(id) {
		return false
	}
	active, ok := ecs.GetComponent[*components.ActiveComponent](s.entityManager, id)
	return !ok || active.Active
}

// overlaps 圆形重叠检测（边界相切也算重叠）
func (s *TriggerSystem) overlaps(a, b ecs.EntityID) bool {
	posA, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, a)
	posB, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, b)
	colA, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, a)
	colB, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, b)

	dx := posA.Position[0] - posB.Position[0]
	dz := posA.Position[2] - posB.Position[2]
	r := colA.Radius + colB.Radius
	return dx*dx+dz*dz <= r*r
}
