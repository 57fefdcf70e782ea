// Package world 把一个关卡组装为可运行的 ECS 世界
//
// World 负责创建玩家、拾取物、文本标签等实体，并按固定顺序驱动各系统：
// 人脸移动 -> 刚体积分 -> 触发检测 -> 清理实体。
// 渲染前端（ebiten 窗口、终端、无界面回放）共用同一个 World。
package world

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/ecs"
	"github.com/gonewx/facepilot/pkg/entities"
	"github.com/gonewx/facepilot/pkg/systems"
)

// World 一个关卡的运行时状态
type World struct {
	cfg      *config.GameConfig
	level    *config.LevelConfig
	tracking systems.TrackingState

	entityManager *ecs.EntityManager
	player        ecs.EntityID
	countLabel    *components.TextLabelComponent
	winLabel      *components.TextLabelComponent

	faceMovementSystem *systems.FaceMovementSystem
	rigidbodySystem    *systems.RigidbodySystem
	triggerSystem      *systems.TriggerSystem
	pickupSystem       *systems.PickupSystem

	// OnPickup 每次拾取后回调，重新开始后仍然有效
	OnPickup func(count int)
	// OnWin 首次获胜时回调
	OnWin func(count int)
}

// New 创建关卡世界
//
// 参数：
//   - cfg: 已校验的游戏配置
//   - level: 已校验的关卡配置，必须包含 "count" 和 "win" 两个标签
//   - tracking: 人脸追踪状态（通常是 *facetracking.Tracker）
//
// 返回：
//   - error: 标签缺失时返回包装了 systems.ErrLabelNotConfigured 的错误
func New(cfg *config.GameConfig, level *config.LevelConfig, tracking systems.TrackingState) (*World, error) {
	w := &World{
		cfg:      cfg,
		level:    level,
		tracking: tracking,
	}
	if err := w.build(); err != nil {
		return nil, err
	}
	return w, nil
}

// build 创建全部实体和系统
func (w *World) build() error {
	em := ecs.NewEntityManager()

	player := entities.NewPlayerEntity(em, w.cfg.Player, w.level.Player)

	positions := w.level.PickupPositions()
	for _, p := range positions {
		entities.NewPickupEntity(em, p, w.level.Pickups.Radius)
	}
	for _, prop := range w.level.Props {
		entities.NewPropEntity(em, prop)
	}

	// 标签缺失时保持接口为 nil，由 NewPickupSystem 报错
	var countText, winText components.TextTarget
	var countLabel, winLabel *components.TextLabelComponent
	if l, ok := w.level.Label(components.CountLabelID); ok {
		_, countLabel = entities.NewTextLabelEntity(em, l)
		countText = countLabel
	}
	if l, ok := w.level.Label(components.WinLabelID); ok {
		_, winLabel = entities.NewTextLabelEntity(em, l)
		winText = winLabel
	}

	pickupSystem, err := systems.NewPickupSystem(em, player, countText, winText)
	if err != nil {
		return fmt.Errorf("level %q: %w", w.level.ID, err)
	}
	pickupSystem.OnPickup = func(count int) {
		if w.OnPickup != nil {
			w.OnPickup(count)
		}
	}
	pickupSystem.OnWin = func(count int) {
		if w.OnWin != nil {
			w.OnWin(count)
		}
	}

	triggerSystem := systems.NewTriggerSystem(em)
	triggerSystem.AddListener(pickupSystem)

	w.entityManager = em
	w.player = player
	w.countLabel = countLabel
	w.winLabel = winLabel
	w.faceMovementSystem = systems.NewFaceMovementSystem(em, w.tracking, w.cfg.Tracking.StrictBlendShapes)
	w.rigidbodySystem = systems.NewRigidbodySystem(em, systems.ArenaBounds{
		HalfWidth: w.level.Arena.HalfWidth,
		HalfDepth: w.level.Arena.HalfDepth,
	})
	w.triggerSystem = triggerSystem
	w.pickupSystem = pickupSystem

	pickupSystem.Start()

	log.Printf("[World] Level %q ready: %d pickups, %d props", w.level.ID, len(positions), len(w.level.Props))
	if len(positions) < systems.WinThreshold {
		log.Printf("[World] Warning: level %q has only %d pickups, win threshold is %d", w.level.ID, len(positions), systems.WinThreshold)
	}
	return nil
}

// Step 推进一个固定物理步
//
// 严格模式下缺少 blend shape 会返回错误，调用方应终止游戏。
func (w *World) Step(deltaTime float64) error {
	if err := w.faceMovementSystem.FixedUpdate(); err != nil {
		return err
	}
	w.rigidbodySystem.Update(deltaTime)
	w.triggerSystem.Update(deltaTime)
	w.entityManager.RemoveMarkedEntities()
	return nil
}

// Restart 重新初始化关卡，计数归零，所有拾取物重新出现
func (w *World) Restart() error {
	log.Printf("[World] Restarting level %q", w.level.ID)
	return w.build()
}

// EntityManager 返回实体管理器（渲染前端用来查询实体）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Player 返回玩家实体ID
func (w *World) Player() ecs.EntityID {
	return w.player
}

// Level 返回关卡配置
func (w *World) Level() *config.LevelConfig {
	return w.level
}

// Tracking 返回人脸追踪状态
func (w *World) Tracking() systems.TrackingState {
	return w.tracking
}

// Count 返回已拾取数量
func (w *World) Count() int {
	return w.pickupSystem.Count()
}

// HasWon 返回是否已获胜
func (w *World) HasWon() bool {
	return w.pickupSystem.HasWon()
}

// CountText 返回计数标签当前文本
func (w *World) CountText() string {
	return w.countLabel.Text
}

// WinText 返回胜利标签当前文本
func (w *World) WinText() string {
	return w.winLabel.Text
}

// PlayerPosition 返回玩家当前位置
func (w *World) PlayerPosition() mgl64.Vec3 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.entityManager, w.player)
	if !ok {
		return mgl64.Vec3{}
	}
	return pos.Position
}

// PlayerVelocity 返回玩家当前速度
func (w *World) PlayerVelocity() mgl64.Vec3 {
	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](w.entityManager, w.player)
	if !ok {
		return mgl64.Vec3{}
	}
	return rb.Velocity
}

// ActivePickups 返回仍然可见的拾取物数量
func (w *World) ActivePickups() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith2[*components.TagComponent, *components.ActiveComponent](w.entityManager) {
		tag, _ := ecs.GetComponent[*components.TagComponent](w.entityManager, id)
		active, _ := ecs.GetComponent[*components.ActiveComponent](w.entityManager, id)
		if active.Active && tag.CompareTag(components.PickUpTag) {
			n++
		}
	}
	return n
}
