package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonewx/facepilot/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 默认配置文件路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏全局配置
//
// 配置文件位置: data/game.yaml
// 加载顺序：YAML 文件 -> 环境变量覆盖（ApplyEnv）-> Validate
type GameConfig struct {
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Tracking TrackingConfig `yaml:"tracking"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`

	// Level 关卡文件路径
	Level string `yaml:"level"`
}

// PlayerConfig 玩家刚体与控制参数
type PlayerConfig struct {
	// Speed 力的缩放系数，必须显式配置（没有默认值）
	Speed  float64 `yaml:"speed"`
	Mass   float64 `yaml:"mass"`
	Drag   float64 `yaml:"drag"`
	Radius float64 `yaml:"radius"`
}

// PhysicsConfig 固定物理步参数
type PhysicsConfig struct {
	// TickRate 每秒物理步数（默认 50，即 0.02 秒一步）
	TickRate float64 `yaml:"tickRate"`
	// MaxStepsPerFrame 单帧最多追赶的物理步数，防止卡顿后“螺旋式”追帧
	MaxStepsPerFrame int `yaml:"maxStepsPerFrame"`
}

// TrackingConfig 人脸追踪参数
type TrackingConfig struct {
	// StrictBlendShapes 为 true 时缺少 blend shape 直接终止游戏；
	// 为 false 时记录日志并跳过该物理步
	StrictBlendShapes bool `yaml:"strictBlendShapes"`
	// Recording 启动时回放的录制文件，为空则使用键盘模拟
	Recording string `yaml:"recording"`
	// LoopRecording 录制播放完后是否循环
	LoopRecording bool `yaml:"loopRecording"`
}

// DisplayConfig 窗口与绘制参数
type DisplayConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
	Overlay       bool    `yaml:"overlay"`
	Title         string  `yaml:"title"`
}

// AudioConfig 音效参数
type AudioConfig struct {
	Sound  bool    `yaml:"sound"`
	Volume float64 `yaml:"volume"`
}

// ErrSpeedNotConfigured 表示没有配置玩家速度
var ErrSpeedNotConfigured = errors.New("player.speed is not configured")

// DefaultGameConfig 返回除 Speed 外的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Player: PlayerConfig{
			Mass:   1.0,
			Drag:   0.0,
			Radius: 0.5,
		},
		Physics: PhysicsConfig{
			TickRate:         50,
			MaxStepsPerFrame: 5,
		},
		Tracking: TrackingConfig{
			StrictBlendShapes: true,
			LoopRecording:     true,
		},
		Display: DisplayConfig{
			Width:         800,
			Height:        600,
			PixelsPerUnit: 25,
			Overlay:       true,
			Title:         "facepilot",
		},
		Audio: AudioConfig{
			Sound:  true,
			Volume: 0.5,
		},
		Level: "data/levels/rollaball.yaml",
	}
}

// ParseGameConfig 解析 YAML 配置，未出现的字段保留默认值
//
// 返回的配置尚未应用环境变量，也未校验。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 加载游戏配置
//
// 依次执行：读取文件、解析 YAML、应用环境变量覆盖、校验。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Player.Speed == 0 {
		return ErrSpeedNotConfigured
	}
	if c.Player.Mass <= 0 {
		return fmt.Errorf("player.mass must be positive, got %.3f", c.Player.Mass)
	}
	if c.Player.Drag < 0 {
		return fmt.Errorf("player.drag must not be negative, got %.3f", c.Player.Drag)
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be positive, got %.3f", c.Player.Radius)
	}
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("physics.tickRate must be positive, got %.3f", c.Physics.TickRate)
	}
	if c.Physics.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("physics.maxStepsPerFrame must be positive, got %d", c.Physics.MaxStepsPerFrame)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.PixelsPerUnit <= 0 {
		return fmt.Errorf("display.pixelsPerUnit must be positive, got %.3f", c.Display.PixelsPerUnit)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0,1], got %.3f", c.Audio.Volume)
	}
	if c.Level == "" {
		return fmt.Errorf("level is not configured")
	}
	return nil
}

// FixedDeltaTime 返回一个物理步的时长（秒）
func (c *GameConfig) FixedDeltaTime() float64 {
	return 1.0 / c.Physics.TickRate
}

// ReadFile 读取数据文件
//
// 优先读取磁盘文件（便于用户替换配置和录制），磁盘上不存在时回退到嵌入资源。
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, os.ErrNotExist) && embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return nil, err
}
