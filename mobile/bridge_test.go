package mobile

import (
	"errors"
	"testing"

	"github.com/gonewx/facepilot/pkg/facetracking"
)

// TestBridgeNotReady 测试未初始化时返回错误
func TestBridgeNotReady(t *testing.T) {
	setFaceSink(nil)
	if err := FaceAnchorAdded("face", "{}"); !errors.Is(err, ErrBridgeNotReady) {
		t.Errorf("Expected ErrBridgeNotReady, got %v", err)
	}
}

// TestBridgeDeliversThroughQueue 测试 JSON 数据经由队列到达 Tracker
func TestBridgeDeliversThroughQueue(t *testing.T) {
	queue := facetracking.NewEventQueue()
	setFaceSink(queue)
	defer setFaceSink(nil)

	if err := FaceAnchorAdded("face-1", `{"eyeBlink_L": 0.2, "eyeBlink_R": 0.5}`); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := FaceAnchorRemoved("face-1", ""); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if queue.Len() != 2 {
		t.Fatalf("Expected 2 queued events, got %d", queue.Len())
	}

	tracker := facetracking.NewTracker()
	queue.Dispatch(tracker)

	if tracker.IsTrackingEnabled() {
		t.Error("Expected tracking disabled after removal")
	}
	if v, err := tracker.BlendShapes().Value(facetracking.EyeBlinkRight); err != nil || v != 0.5 {
		t.Errorf("Expected stale snapshot eyeBlink_R=0.5, got %v (%v)", v, err)
	}
}

func TestBridgeRejectsBadPayload(t *testing.T) {
	queue := facetracking.NewEventQueue()
	setFaceSink(queue)
	defer setFaceSink(nil)

	if err := FaceAnchorUpdated("face-1", `[1, 2`); err == nil {
		t.Error("Expected decode error")
	}
	if queue.Len() != 0 {
		t.Errorf("Bad payload should not be queued, got %d", queue.Len())
	}
}
