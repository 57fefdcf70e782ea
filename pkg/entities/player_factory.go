package entities

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// PlayerColor 玩家球体颜色
var PlayerColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}

// NewPlayerEntity 创建由人脸追踪控制的玩家球体
// 参数:
//   - manager: EntityManager 实例
//   - player: 玩家刚体参数（速度、质量、阻力、半径）
//   - spawn: 出生点（X/Z 平面）
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager, player config.PlayerConfig, spawn config.PointConfig) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		Position: mgl64.Vec3{spawn.X, 0, spawn.Z},
	})
	manager.AddComponent(id, &components.RigidbodyComponent{
		Mass: player.Mass,
		Drag: player.Drag,
	})
	manager.AddComponent(id, &components.ColliderComponent{
		Radius:    player.Radius,
		IsTrigger: false,
	})
	manager.AddComponent(id, &components.TagComponent{Tag: components.PlayerTag})
	manager.AddComponent(id, &components.PlayerControllerComponent{Speed: player.Speed})
	manager.AddComponent(id, &components.PickupCounterComponent{})
	manager.AddComponent(id, &components.SpriteComponent{
		Shape:  components.ShapeCircle,
		Color:  PlayerColor,
		Radius: player.Radius,
		Glyph:  '●',
	})

	return id
}
