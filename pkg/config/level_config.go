package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义场地大小、玩家出生点、拾取物布局和文本标签位置
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "rollaball"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）

	Arena   ArenaConfig   `yaml:"arena"`
	Player  PointConfig   `yaml:"player"`  // 玩家出生点
	Pickups PickupsConfig `yaml:"pickups"` // 拾取物布局
	Labels  []LabelConfig `yaml:"labels"`  // 文本标签，必须包含 count 和 win
	Props   []PropConfig  `yaml:"props"`   // 其他带标签的触发器（不会被计数）
}

// ArenaConfig 场地大小（以原点为中心）
type ArenaConfig struct {
	HalfWidth float64 `yaml:"halfWidth"`
	HalfDepth float64 `yaml:"halfDepth"`
}

// PointConfig X/Z 平面上的一个点
type PointConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// PickupsConfig 拾取物布局
// Ring 与 Positions 可以同时使用，Ring 生成的点排在前面
type PickupsConfig struct {
	Radius    float64       `yaml:"radius"`    // 触发半径
	Ring      *RingConfig   `yaml:"ring"`      // 环形布局（可选）
	Positions []PointConfig `yaml:"positions"` // 显式位置（可选）
}

// RingConfig 环形均匀分布
type RingConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	// StartAngle 第一个点的角度（度），0 表示 +X 方向
	StartAngle float64 `yaml:"startAngle"`
}

// LabelConfig 屏幕文本标签
type LabelConfig struct {
	ID       string  `yaml:"id"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Centered bool    `yaml:"centered"`
}

// PropConfig 其他触发器，例如带 "Hazard" 标签的装饰物
type PropConfig struct {
	Tag    string      `yaml:"tag"`
	At     PointConfig `yaml:"at"`
	Radius float64     `yaml:"radius"`
}

// ParseLevelConfig 解析关卡 YAML 并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config %q: %w", cfg.ID, err)
	}
	return &cfg, nil
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	path - 关卡配置文件的路径（磁盘或嵌入资源）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config: %w", err)
	}
	return ParseLevelConfig(data)
}

// Validate 验证关卡配置
//
// 拾取物数量可以少于获胜所需数量（此时无法获胜，但不是错误）。
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	if c.Arena.HalfWidth < 0 || c.Arena.HalfDepth < 0 {
		return fmt.Errorf("arena size must not be negative")
	}
	if c.Pickups.Radius <= 0 {
		return fmt.Errorf("pickups.radius must be positive, got %.3f", c.Pickups.Radius)
	}
	if c.Pickups.Ring != nil {
		if c.Pickups.Ring.Count < 0 {
			return fmt.Errorf("pickups.ring.count must not be negative")
		}
		if c.Pickups.Ring.Radius <= 0 && c.Pickups.Ring.Count > 0 {
			return fmt.Errorf("pickups.ring.radius must be positive")
		}
	}
	for i, p := range c.Props {
		if p.Radius <= 0 {
			return fmt.Errorf("props[%d].radius must be positive", i)
		}
	}

	seen := make(map[string]bool, len(c.Labels))
	for _, l := range c.Labels {
		if seen[l.ID] {
			return fmt.Errorf("duplicate label %q", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// PickupPositions 展开环形布局与显式位置
func (c *LevelConfig) PickupPositions() []PointConfig {
	points := make([]PointConfig, 0, len(c.Pickups.Positions)+12)
	if ring := c.Pickups.Ring; ring != nil && ring.Count > 0 {
		step := 2 * math.Pi / float64(ring.Count)
		start := ring.StartAngle * math.Pi / 180
		for i := 0; i < ring.Count; i++ {
			angle := start + step*float64(i)
			points = append(points, PointConfig{
				X: ring.Radius * math.Cos(angle),
				Z: ring.Radius * math.Sin(angle),
			})
		}
	}
	return append(points, c.Pickups.Positions...)
}

// Label 按ID查找文本标签配置
func (c *LevelConfig) Label(id string) (LabelConfig, bool) {
	for _, l := range c.Labels {
		if l.ID == id {
			return l, true
		}
	}
	return LabelConfig{}, false
}
