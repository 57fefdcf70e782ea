package config

import (
	"math"
	"strings"
	"testing"
)

const testLevelYAML = `
id: rollaball
name: Roll-a-Ball
arena:
  halfWidth: 10
  halfDepth: 10
player: {x: 0, z: 0}
pickups:
  radius: 0.35
  ring:
    count: 4
    radius: 6
  positions:
    - {x: 1, z: 2}
labels:
  - id: count
    x: 12
    y: 12
  - id: win
    x: 400
    y: 300
    centered: true
props:
  - tag: Hazard
    at: {x: -3, z: 3}
    radius: 0.5
`

// TestParseLevelConfig 测试关卡解析与布局展开
func TestParseLevelConfig(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(testLevelYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.ID != "rollaball" || cfg.Arena.HalfWidth != 10 {
		t.Errorf("Unexpected level: %+v", cfg)
	}

	points := cfg.PickupPositions()
	if len(points) != 5 {
		t.Fatalf("Expected 5 pickups, got %d", len(points))
	}
	// 环形第一个点在 +X 方向，第二个在 +Z 方向
	if math.Abs(points[0].X-6) > 1e-9 || math.Abs(points[0].Z) > 1e-9 {
		t.Errorf("Unexpected first ring point: %+v", points[0])
	}
	if math.Abs(points[1].X) > 1e-9 || math.Abs(points[1].Z-6) > 1e-9 {
		t.Errorf("Unexpected second ring point: %+v", points[1])
	}
	if points[4] != (PointConfig{X: 1, Z: 2}) {
		t.Errorf("Explicit position should come last, got %+v", points[4])
	}

	win, ok := cfg.Label("win")
	if !ok || !win.Centered || win.X != 400 {
		t.Errorf("Unexpected win label: %+v (ok=%v)", win, ok)
	}
	if _, ok := cfg.Label("score"); ok {
		t.Error("Unknown label should not be found")
	}
	if len(cfg.Props) != 1 || cfg.Props[0].Tag != "Hazard" {
		t.Errorf("Unexpected props: %+v", cfg.Props)
	}
}

// TestLevelConfigValidate 测试非法关卡
func TestLevelConfigValidate(t *testing.T) {
	cases := map[string]string{
		"missing id":      "pickups: {radius: 1}",
		"zero radius":     "id: a\npickups: {radius: 0}",
		"ring radius":     "id: a\npickups: {radius: 1, ring: {count: 3, radius: 0}}",
		"duplicate label": "id: a\npickups: {radius: 1}\nlabels: [{id: count}, {id: count}]",
		"prop radius":     "id: a\npickups: {radius: 1}\nprops: [{tag: X}]",
	}
	for name, doc := range cases {
		if _, err := ParseLevelConfig([]byte(doc)); err == nil {
			t.Errorf("%s: expected validation error", name)
		} else if !strings.Contains(err.Error(), "level config") {
			t.Errorf("%s: error should mention level config: %v", name, err)
		}
	}
}
