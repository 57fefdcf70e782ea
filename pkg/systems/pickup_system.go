package systems

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// WinThreshold 获胜所需的拾取数量
const WinThreshold = 12

// WinText 达到阈值后显示的文本
const WinText = "You Win!"

// ErrLabelNotConfigured 表示计数或胜利文本标签没有配置
var ErrLabelNotConfigured = errors.New("text label not configured")

// PickupSystem 处理玩家与拾取物的触发事件
//
// 玩家进入标签为 "Pick Up" 的触发器时：停用该物体、计数加一、刷新计数文本，
// 计数达到 WinThreshold 后显示胜利文本（单向，不会被重置）。其他标签一律忽略。
type PickupSystem struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID
	countText     components.TextTarget
	winText       components.TextTarget

	// OnPickup 每次拾取后回调（用于音效），可为 nil
	OnPickup func(count int)
	// OnWin 首次达到阈值时回调，可为 nil
	OnWin func(count int)
}

// NewPickupSystem 创建拾取系统
//
// 参数：
//   - em: 实体管理器
//   - player: 玩家实体，必须带 PickupCounterComponent
//   - countText: 计数文本目标
//   - winText: 胜利文本目标
//
// 返回：
//   - error: 任一文本目标为 nil 时返回 ErrLabelNotConfigured
func NewPickupSystem(em *ecs.EntityManager, player ecs.EntityID, countText, winText components.TextTarget) (*PickupSystem, error) {
	if countText == nil {
		return nil, fmt.Errorf("count: %w", ErrLabelNotConfigured)
	}
	if winText == nil {
		return nil, fmt.Errorf("win: %w", ErrLabelNotConfigured)
	}
	return &PickupSystem{
		entityManager: em,
		player:        player,
		countText:     countText,
		winText:       winText,
	}, nil
}

// Start 初始化文本：计数显示为当前值，胜利文本清空
func (s *PickupSystem) Start() {
	s.setCountText()
	s.winText.SetText("")
}

// OnTriggerEnter 实现 TriggerListener
func (s *PickupSystem) OnTriggerEnter(self, other ecs.EntityID) {
	if self != s.player {
		return
	}

	tag, ok := ecs.GetComponent[*components.TagComponent](s.entityManager, other)
	if !ok || !tag.CompareTag(components.PickUpTag) {
		return
	}

	// 停用拾取物，使其消失
	if active, ok := ecs.GetComponent[*components.ActiveComponent](s.entityManager, other); ok {
		active.SetActive(false)
	} else {
		s.entityManager.AddComponent(other, &components.ActiveComponent{Active: false})
	}

	counter := s.counter()
	counter.Count++
	log.Printf("[PickupSystem] Picked up entity %d, count = %d", other, counter.Count)

	s.setCountText()

	if s.OnPickup != nil {
		s.OnPickup(counter.Count)
	}
}

// Count 返回当前拾取数量
func (s *PickupSystem) Count() int {
	return s.counter().Count
}

// HasWon 返回是否已获胜
func (s *PickupSystem) HasWon() bool {
	return s.counter().Won
}

// setCountText 刷新计数文本并检查胜利条件
func (s *PickupSystem) setCountText() {
	counter := s.counter()
	s.countText.SetText("Count: " + strconv.Itoa(counter.Count))

	if counter.Count >= WinThreshold {
		s.winText.SetText(WinText)
		if !counter.Won {
			counter.Won = true
			log.Printf("[PickupSystem] Win threshold %d reached", WinThreshold)
			if s.OnWin != nil {
				s.OnWin(counter.Count)
			}
		}
	}
}

// counter 返回玩家的计数组件，缺失时补上一个
func (s *PickupSystem) counter() *components.PickupCounterComponent {
	counter, ok := ecs.GetComponent[*components.PickupCounterComponent](s.entityManager, s.player)
	if !ok {
		counter = &components.PickupCounterComponent{}
		s.entityManager.AddComponent(s.player, counter)
	}
	return counter
}
