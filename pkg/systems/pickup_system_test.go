package systems

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// createTestPickup 创建带标签的触发器实体
func createTestPickup(em *ecs.EntityManager, tag string) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.ColliderComponent{Radius: 0.5, IsTrigger: true})
	em.AddComponent(id, &components.TagComponent{Tag: tag})
	em.AddComponent(id, &components.ActiveComponent{Active: true})
	return id
}

func newTestPickupSystem(t *testing.T) (*ecs.EntityManager, ecs.EntityID, *PickupSystem, *components.TextLabelComponent, *components.TextLabelComponent) {
	t.Helper()
	em := ecs.NewEntityManager()
	player, _ := createTestPlayer(em, 10)
	countLabel := &components.TextLabelComponent{ID: components.CountLabelID}
	winLabel := &components.TextLabelComponent{ID: components.WinLabelID, Text: "stale"}

	system, err := NewPickupSystem(em, player, countLabel, winLabel)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	system.Start()
	return em, player, system, countLabel, winLabel
}

// TestPickupStartLabels 测试初始化后的文本
func TestPickupStartLabels(t *testing.T) {
	_, _, _, countLabel, winLabel := newTestPickupSystem(t)

	if countLabel.Text != "Count: 0" {
		t.Errorf("Expected 'Count: 0', got %q", countLabel.Text)
	}
	if winLabel.Text != "" {
		t.Errorf("Expected empty win text, got %q", winLabel.Text)
	}
}

// TestPickupWinScenario 测试 11 次拾取不获胜，第 12 次获胜
func TestPickupWinScenario(t *testing.T) {
	em, player, system, countLabel, winLabel := newTestPickupSystem(t)

	for i := 0; i < 11; i++ {
		system.OnTriggerEnter(player, createTestPickup(em, components.PickUpTag))
	}
	if countLabel.Text != "Count: 11" {
		t.Errorf("Expected 'Count: 11', got %q", countLabel.Text)
	}
	if winLabel.Text != "" {
		t.Errorf("Expected empty win text before threshold, got %q", winLabel.Text)
	}
	if system.HasWon() {
		t.Error("Should not have won at 11")
	}

	system.OnTriggerEnter(player, createTestPickup(em, components.PickUpTag))
	if countLabel.Text != "Count: 12" {
		t.Errorf("Expected 'Count: 12', got %q", countLabel.Text)
	}
	if winLabel.Text != "You Win!" {
		t.Errorf("Expected 'You Win!', got %q", winLabel.Text)
	}

	// 之后的拾取保持胜利状态
	system.OnTriggerEnter(player, createTestPickup(em, components.PickUpTag))
	if winLabel.Text != "You Win!" || system.Count() != 13 {
		t.Errorf("Expected win to persist at 13, got %q / %d", winLabel.Text, system.Count())
	}
}

// TestPickupIgnoresOtherTags 测试其他标签不影响计数
func TestPickupIgnoresOtherTags(t *testing.T) {
	em, player, system, countLabel, _ := newTestPickupSystem(t)

	for _, tag := range []string{"", "Wall", "pick up", "PickUp", components.PlayerTag} {
		other := createTestPickup(em, tag)
		system.OnTriggerEnter(player, other)

		active, _ := ecs.GetComponent[*components.ActiveComponent](em, other)
		if !active.Active {
			t.Errorf("Tag %q should not deactivate the object", tag)
		}
	}

	// 没有标签组件的实体
	system.OnTriggerEnter(player, em.CreateEntity())

	if system.Count() != 0 || countLabel.Text != "Count: 0" {
		t.Errorf("Expected count 0, got %d (%q)", system.Count(), countLabel.Text)
	}
}

// TestPickupDeactivatesObject 测试拾取后物体被停用
func TestPickupDeactivatesObject(t *testing.T) {
	em, player, system, _, _ := newTestPickupSystem(t)
	pickup := createTestPickup(em, components.PickUpTag)

	system.OnTriggerEnter(player, pickup)

	active, _ := ecs.GetComponent[*components.ActiveComponent](em, pickup)
	if active.Active {
		t.Error("Pickup should be deactivated")
	}
}

// TestPickupCallbacks 测试拾取与胜利回调
func TestPickupCallbacks(t *testing.T) {
	em, player, system, _, _ := newTestPickupSystem(t)
	var pickups []int
	wins := 0
	system.OnPickup = func(count int) { pickups = append(pickups, count) }
	system.OnWin = func(count int) { wins++ }

	for i := 0; i < 14; i++ {
		system.OnTriggerEnter(player, createTestPickup(em, components.PickUpTag))
	}

	if len(pickups) != 14 || pickups[13] != 14 {
		t.Errorf("Expected 14 pickup callbacks, got %v", pickups)
	}
	if wins != 1 {
		t.Errorf("Expected OnWin exactly once, got %d", wins)
	}
}

// TestPickupIgnoresOtherBodies 测试非玩家实体进入触发器不计数
func TestPickupIgnoresOtherBodies(t *testing.T) {
	em, _, system, _, _ := newTestPickupSystem(t)
	other, _ := createTestPlayer(em, 1)

	system.OnTriggerEnter(other, createTestPickup(em, components.PickUpTag))
	if system.Count() != 0 {
		t.Errorf("Expected count 0, got %d", system.Count())
	}
}

func TestNewPickupSystemRequiresLabels(t *testing.T) {
	em := ecs.NewEntityManager()
	player, _ := createTestPlayer(em, 1)
	label := &components.TextLabelComponent{}

	for i, pair := range [][2]components.TextTarget{{nil, label}, {label, nil}} {
		_, err := NewPickupSystem(em, player, pair[0], pair[1])
		if !errors.Is(err, ErrLabelNotConfigured) {
			t.Errorf("Case %d: expected ErrLabelNotConfigured, got %v", i, err)
		}
	}
}

// ExamplePickupSystem 演示计数文本的变化
func ExamplePickupSystem() {
	em := ecs.NewEntityManager()
	player := em.CreateEntity()
	countLabel := &components.TextLabelComponent{}
	winLabel := &components.TextLabelComponent{}
	system, _ := NewPickupSystem(em, player, countLabel, winLabel)
	system.Start()

	pickup := em.CreateEntity()
	em.AddComponent(pickup, &components.TagComponent{Tag: components.PickUpTag})
	system.OnTriggerEnter(player, pickup)

	fmt.Println(countLabel.Text)
	// Output: Count: 1
}
