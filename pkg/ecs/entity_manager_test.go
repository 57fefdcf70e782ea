package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if !em.Exists(id2) {
		t.Error("Entity 2 should exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

// TestAddComponentToUnknownEntity 测试向不存在的实体添加组件时被忽略
func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPositionComponent{})

	if em.HasComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 标记后、清理前仍可查询
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

// TestGetEntitiesWithSorted 测试查询结果按ID升序
func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
		}
	}

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)
	if len(both) != 10 {
		t.Fatalf("Expected 10 entities, got %d", len(both))
	}
	for i := 1; i < len(both); i++ {
		if both[i-1] >= both[i] {
			t.Fatalf("Expected ascending IDs, got %v", both)
		}
	}
}

// TestGenericHelpers 测试泛型查询与反射查询结果一致
func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3})
	em.AddComponent(id, &testVelocityComponent{VX: 4})
	other := em.CreateEntity()
	em.AddComponent(other, &testPositionComponent{})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 {
		t.Errorf("Expected position X=3, got %+v (ok=%v)", pos, ok)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, other); ok {
		t.Error("Entity without velocity should not return a component")
	}

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(got))
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("Expected only entity %d, got %v", id, got)
	}

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report velocity")
	}
	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Velocity should be removed")
	}
}
