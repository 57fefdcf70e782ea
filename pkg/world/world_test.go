package world

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/facetracking"
	"github.com/gonewx/facepilot/pkg/systems"
)

func testGameConfig(strict bool) *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Player.Speed = 10
	cfg.Tracking.StrictBlendShapes = strict
	return cfg
}

// testLevel 12 个拾取物排成一行，位于玩家 +X 方向
func testLevel() *config.LevelConfig {
	level := &config.LevelConfig{
		ID:      "line",
		Arena:   config.ArenaConfig{HalfWidth: 20, HalfDepth: 20},
		Pickups: config.PickupsConfig{Radius: 0.35},
		Labels: []config.LabelConfig{
			{ID: "count", X: 10, Y: 10},
			{ID: "win", X: 400, Y: 300, Centered: true},
		},
	}
	for i := 1; i <= 12; i++ {
		level.Pickups.Positions = append(level.Pickups.Positions, config.PointConfig{X: float64(i)})
	}
	return level
}

func faceShapes(blinkL, blinkR float64) facetracking.BlendShapes {
	return facetracking.BlendShapes{
		facetracking.EyeBlinkLeft:     blinkL,
		facetracking.EyeBlinkRight:    blinkR,
		facetracking.EyeLookUpLeft:    0,
		facetracking.EyeLookUpRight:   0,
		facetracking.EyeLookDownLeft:  0,
		facetracking.EyeLookDownRight: 0,
	}
}

func runSteps(t *testing.T, w *World, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := w.Step(0.02); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}
}

// TestWorldInitialLabels 测试开始时的标签文本
func TestWorldInitialLabels(t *testing.T) {
	w, err := New(testGameConfig(true), testLevel(), facetracking.NewTracker())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if w.CountText() != "Count: 0" {
		t.Errorf("Expected 'Count: 0', got %q", w.CountText())
	}
	if w.WinText() != "" {
		t.Errorf("Expected empty win text, got %q", w.WinText())
	}
	if w.ActivePickups() != 12 {
		t.Errorf("Expected 12 active pickups, got %d", w.ActivePickups())
	}
}

// TestWorldNoFaceNoMovement 测试未追踪人脸时玩家保持静止
func TestWorldNoFaceNoMovement(t *testing.T) {
	w, err := New(testGameConfig(true), testLevel(), facetracking.NewTracker())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	runSteps(t, w, 50)

	if w.PlayerPosition() != (mgl64.Vec3{}) {
		t.Errorf("Player should not move, got %v", w.PlayerPosition())
	}
	if w.Count() != 0 {
		t.Errorf("Expected count 0, got %d", w.Count())
	}
}

// TestWorldCollectsAllPickups 测试右眼闭合时玩家向 +X 滚动并收集全部拾取物
func TestWorldCollectsAllPickups(t *testing.T) {
	tracker := facetracking.NewTracker()
	w, err := New(testGameConfig(true), testLevel(), tracker)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var pickups []int
	wins := 0
	w.OnPickup = func(count int) { pickups = append(pickups, count) }
	w.OnWin = func(count int) { wins++ }

	tracker.OnFaceAdded(facetracking.FaceAnchor{Identifier: "face", BlendShapes: faceShapes(0, 1)})
	runSteps(t, w, 200)

	if w.Count() != 12 {
		t.Fatalf("Expected count 12, got %d", w.Count())
	}
	if w.CountText() != "Count: 12" {
		t.Errorf("Expected 'Count: 12', got %q", w.CountText())
	}
	if w.WinText() != systems.WinText || !w.HasWon() {
		t.Errorf("Expected win, got %q (won=%v)", w.WinText(), w.HasWon())
	}
	if wins != 1 {
		t.Errorf("Expected OnWin once, got %d", wins)
	}
	for i, c := range pickups {
		if c != i+1 {
			t.Fatalf("Pickup callbacks out of order: %v", pickups)
		}
	}
	if w.ActivePickups() != 0 {
		t.Errorf("Expected all pickups deactivated, got %d", w.ActivePickups())
	}

	// 玩家停在墙内
	limit := 20 - 0.5
	if x := w.PlayerPosition().X(); math.Abs(x-limit) > 1e-9 {
		t.Errorf("Expected player at wall x=%.2f, got %.4f", limit, x)
	}
}

// TestWorldRestart 测试重新开始会重置计数与拾取物
func TestWorldRestart(t *testing.T) {
	tracker := facetracking.NewTracker()
	w, err := New(testGameConfig(true), testLevel(), tracker)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	calls := 0
	w.OnPickup = func(int) { calls++ }

	tracker.OnFaceAdded(facetracking.FaceAnchor{BlendShapes: faceShapes(0, 1)})
	runSteps(t, w, 200)

	if err := w.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if w.Count() != 0 || w.CountText() != "Count: 0" || w.WinText() != "" {
		t.Errorf("Restart did not reset state: count=%d %q %q", w.Count(), w.CountText(), w.WinText())
	}
	if w.ActivePickups() != 12 {
		t.Errorf("Expected 12 active pickups after restart, got %d", w.ActivePickups())
	}

	before := calls
	runSteps(t, w, 50)
	if calls == before {
		t.Error("OnPickup should survive a restart")
	}
}

// TestWorldMissingLabel 测试缺少标签时创建失败
func TestWorldMissingLabel(t *testing.T) {
	level := testLevel()
	level.Labels = level.Labels[:1]

	_, err := New(testGameConfig(true), level, facetracking.NewTracker())
	if !errors.Is(err, systems.ErrLabelNotConfigured) {
		t.Errorf("Expected ErrLabelNotConfigured, got %v", err)
	}
}

// TestWorldStrictMissingBlendShape 测试严格模式下缺少 blend shape 返回错误
func TestWorldStrictMissingBlendShape(t *testing.T) {
	partial := facetracking.BlendShapes{facetracking.EyeBlinkLeft: 1}

	strictTracker := facetracking.NewTracker()
	strict, _ := New(testGameConfig(true), testLevel(), strictTracker)
	strictTracker.OnFaceAdded(facetracking.FaceAnchor{BlendShapes: partial})
	if err := strict.Step(0.02); !errors.Is(err, facetracking.ErrBlendShapeMissing) {
		t.Errorf("Expected ErrBlendShapeMissing, got %v", err)
	}

	lenientTracker := facetracking.NewTracker()
	lenient, _ := New(testGameConfig(false), testLevel(), lenientTracker)
	lenientTracker.OnFaceAdded(facetracking.FaceAnchor{BlendShapes: partial})
	if err := lenient.Step(0.02); err != nil {
		t.Errorf("Lenient mode should skip the step, got %v", err)
	}
	if lenient.PlayerVelocity().Len() != 0 {
		t.Errorf("Skipped step should apply no force, got velocity %v", lenient.PlayerVelocity())
	}
}
