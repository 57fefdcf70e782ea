package entities

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// 拾取物与其他触发器的颜色
var (
	PickupColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	PropColor   = color.RGBA{R: 200, G: 60, B: 60, A: 255}
)

// NewPickupEntity 创建一个拾取物（标签为 "Pick Up" 的激活触发器）
// 参数:
//   - manager: EntityManager 实例
//   - at: 位置（X/Z 平面）
//   - radius: 触发半径
//
// 返回: 创建的实体ID
func NewPickupEntity(manager *ecs.EntityManager, at config.PointConfig, radius float64) ecs.EntityID {
	return newTriggerEntity(manager, components.PickUpTag, at, radius, PickupColor, '◆')
}

// NewPropEntity 创建其他标签的触发器
// 玩家进入时会产生触发事件，但不会被计数
func NewPropEntity(manager *ecs.EntityManager, prop config.PropConfig) ecs.EntityID {
	return newTriggerEntity(manager, prop.Tag, prop.At, prop.Radius, PropColor, 'x')
}

func newTriggerEntity(manager *ecs.EntityManager, tag string, at config.PointConfig, radius float64, c color.RGBA, glyph rune) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		Position: mgl64.Vec3{at.X, 0, at.Z},
	})
	manager.AddComponent(id, &components.ColliderComponent{
		Radius:    radius,
		IsTrigger: true,
	})
	manager.AddComponent(id, &components.TagComponent{Tag: tag})
	manager.AddComponent(id, &components.ActiveComponent{Active: true})
	manager.AddComponent(id, &components.SpriteComponent{
		Shape:  components.ShapeDiamond,
		Color:  c,
		Radius: radius,
		Glyph:  glyph,
	})

	return id
}
