package facetracking

import "sync"

// EventQueue 是宿主线程与游戏主循环之间的事件缓冲
//
// 原生 AR 宿主可能在任意线程回调，Push 系列方法是并发安全的；
// Dispatch 只在游戏主循环中调用，按到达顺序把事件投递给监听器。
// 实现 AnchorListener，可以直接作为录制回放或键盘模拟的输出。
type EventQueue struct {
	mu      sync.Mutex
	pending []AnchorEvent
}

// NewEventQueue 创建空队列
func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]AnchorEvent, 0, 8)}
}

// Push 追加一个事件
func (q *EventQueue) Push(event AnchorEvent) {
	event.Anchor.BlendShapes = event.Anchor.BlendShapes.Clone()

	q.mu.Lock()
	q.pending = append(q.pending, event)
	q.mu.Unlock()
}

// OnFaceAdded 入队 added 事件
func (q *EventQueue) OnFaceAdded(anchor FaceAnchor) {
	q.Push(AnchorEvent{Kind: AnchorAdded, Anchor: anchor})
}

// OnFaceUpdated 入队 updated 事件
func (q *EventQueue) OnFaceUpdated(anchor FaceAnchor) {
	q.Push(AnchorEvent{Kind: AnchorUpdated, Anchor: anchor})
}

// OnFaceRemoved 入队 removed 事件
func (q *EventQueue) OnFaceRemoved(anchor FaceAnchor) {
	q.Push(AnchorEvent{Kind: AnchorRemoved, Anchor: anchor})
}

// Len 返回待投递事件数量
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dispatch 取出所有待投递事件并按顺序投递
//
// 返回：
//   - int: 本次投递的事件数量
func (q *EventQueue) Dispatch(listener AnchorListener) int {
	q.mu.Lock()
	events := q.pending
	q.pending = make([]AnchorEvent, 0, cap(events))
	q.mu.Unlock()

	for _, e := range events {
		e.Deliver(listener)
	}
	return len(events)
}
