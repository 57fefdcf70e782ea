package entities

import (
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// NewTextLabelEntity 创建屏幕文本标签实体
// 返回实体ID和标签组件（组件同时作为 PickupSystem 的文本目标）
func NewTextLabelEntity(manager *ecs.EntityManager, label config.LabelConfig) (ecs.EntityID, *components.TextLabelComponent) {
	id := manager.CreateEntity()

	comp := &components.TextLabelComponent{
		ID:       label.ID,
		X:        label.X,
		Y:        label.Y,
		Centered: label.Centered,
	}
	manager.AddComponent(id, comp)

	return id, comp
}
