package facetracking

import (
	"errors"
	"sync"
	"testing"
)

// TestTrackerLifecycle 测试追踪开关只由 added/removed 控制
func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker()

	if tr.IsTrackingEnabled() {
		t.Fatal("Tracker should start disabled")
	}

	// updated 在 added 之前不会开启追踪
	tr.OnFaceUpdated(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkLeft: 0.5}})
	if tr.IsTrackingEnabled() {
		t.Error("Updated event should not enable tracking")
	}

	tr.OnFaceAdded(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkLeft: 0.1}})
	if !tr.IsTrackingEnabled() {
		t.Fatal("Added event should enable tracking")
	}

	for i := 0; i < 5; i++ {
		tr.OnFaceUpdated(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkLeft: float64(i) / 10}})
		if !tr.IsTrackingEnabled() {
			t.Fatalf("Tracking should stay enabled after update %d", i)
		}
	}

	tr.OnFaceRemoved(FaceAnchor{})
	if tr.IsTrackingEnabled() {
		t.Error("Removed event should disable tracking")
	}
}

// TestTrackerSnapshotReplacedWholesale 测试快照整体替换而非合并
func TestTrackerSnapshotReplacedWholesale(t *testing.T) {
	tr := NewTracker()
	tr.OnFaceAdded(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkLeft: 0.2, EyeBlinkRight: 0.3}})
	tr.OnFaceUpdated(FaceAnchor{BlendShapes: BlendShapes{EyeLookUpLeft: 0.9}})

	shapes := tr.BlendShapes()
	if _, ok := shapes[EyeBlinkLeft]; ok {
		t.Error("Old keys should not survive an update")
	}
	if shapes[EyeLookUpLeft] != 0.9 {
		t.Errorf("Expected eyeLookUp_L=0.9, got %v", shapes[EyeLookUpLeft])
	}
}

// TestTrackerKeepsSnapshotAfterRemoval 测试 removed 不清空快照
func TestTrackerKeepsSnapshotAfterRemoval(t *testing.T) {
	tr := NewTracker()
	tr.OnFaceAdded(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkRight: 0.7}})
	tr.OnFaceRemoved(FaceAnchor{})

	if tr.BlendShapes()[EyeBlinkRight] != 0.7 {
		t.Errorf("Expected stale snapshot to remain, got %v", tr.BlendShapes())
	}
}

// TestTrackerCopiesPayload 测试宿主在投递后修改负载不会影响快照
func TestTrackerCopiesPayload(t *testing.T) {
	tr := NewTracker()
	payload := BlendShapes{EyeBlinkLeft: 0.4}
	tr.OnFaceAdded(FaceAnchor{BlendShapes: payload})
	payload[EyeBlinkLeft] = 1.0

	if tr.BlendShapes()[EyeBlinkLeft] != 0.4 {
		t.Errorf("Expected 0.4, got %v", tr.BlendShapes()[EyeBlinkLeft])
	}
}

func TestBlendShapesValueMissing(t *testing.T) {
	shapes := BlendShapes{EyeBlinkLeft: 0.25}

	v, err := shapes.Value(EyeBlinkLeft)
	if err != nil || v != 0.25 {
		t.Errorf("Expected 0.25, got %v (err=%v)", v, err)
	}

	_, err = shapes.Value(EyeLookDownRight)
	if !errors.Is(err, ErrBlendShapeMissing) {
		t.Errorf("Expected ErrBlendShapeMissing, got %v", err)
	}
}

// TestEventQueueDispatchOrder 测试事件按到达顺序投递
func TestEventQueueDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	q.OnFaceAdded(FaceAnchor{Identifier: "a", BlendShapes: BlendShapes{EyeBlinkLeft: 0.1}})
	q.OnFaceUpdated(FaceAnchor{Identifier: "a", BlendShapes: BlendShapes{EyeBlinkLeft: 0.2}})
	q.OnFaceRemoved(FaceAnchor{Identifier: "a"})

	tr := NewTracker()
	if n := q.Dispatch(tr); n != 3 {
		t.Fatalf("Expected 3 events, got %d", n)
	}
	if tr.IsTrackingEnabled() {
		t.Error("Final removed event should leave tracking disabled")
	}
	if tr.BlendShapes()[EyeBlinkLeft] != 0.2 {
		t.Errorf("Expected last snapshot 0.2, got %v", tr.BlendShapes()[EyeBlinkLeft])
	}
	if q.Len() != 0 {
		t.Errorf("Queue should be empty after dispatch, got %d", q.Len())
	}
}

// TestEventQueueConcurrentPush 测试多线程入队（配合 -race 运行）
func TestEventQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.OnFaceUpdated(FaceAnchor{BlendShapes: BlendShapes{EyeBlinkLeft: 0.5}})
			}
		}()
	}
	wg.Wait()

	if n := q.Dispatch(NewTracker()); n != 800 {
		t.Errorf("Expected 800 events, got %d", n)
	}
}

func TestDecodeBlendShapesJSON(t *testing.T) {
	shapes, err := DecodeBlendShapes([]byte(`{"eyeBlink_L": 0.2, "eyeBlink_R": 1, "eyeLookUp_L": 0}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if shapes[EyeBlinkLeft] != 0.2 || shapes[EyeBlinkRight] != 1 || len(shapes) != 3 {
		t.Errorf("Unexpected decode result: %v", shapes)
	}

	empty, err := DecodeBlendShapes(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected empty map, got %v (err=%v)", empty, err)
	}

	if _, err := DecodeBlendShapes([]byte(`{"eyeBlink_L": "wide"}`)); err == nil {
		t.Error("Expected error for non-numeric value")
	}
}
