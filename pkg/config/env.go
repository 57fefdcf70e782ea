package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// envOverrides 可以通过环境变量覆盖的配置项
// 指针为 nil 表示对应变量未设置
type envOverrides struct {
	Speed             *float64 `env:"FACEPILOT_SPEED"`
	TickRate          *float64 `env:"FACEPILOT_TICK_RATE"`
	StrictBlendShapes *bool    `env:"FACEPILOT_STRICT_BLEND_SHAPES"`
	Recording         *string  `env:"FACEPILOT_RECORDING"`
	Overlay           *bool    `env:"FACEPILOT_OVERLAY"`
	Sound             *bool    `env:"FACEPILOT_SOUND"`
	Level             *string  `env:"FACEPILOT_LEVEL"`
}

// ApplyEnv 用进程环境变量覆盖配置
func (c *GameConfig) ApplyEnv() error {
	return c.applyEnvOptions(env.Options{})
}

// ApplyEnvMap 用给定的变量表覆盖配置（测试和命令行工具使用）
func (c *GameConfig) ApplyEnvMap(vars map[string]string) error {
	return c.applyEnvOptions(env.Options{Environment: vars})
}

func (c *GameConfig) applyEnvOptions(opts env.Options) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Speed != nil {
		c.Player.Speed = *o.Speed
		log.Printf("[Config] player.speed overridden by env: %.3f", c.Player.Speed)
	}
	if o.TickRate != nil {
		c.Physics.TickRate = *o.TickRate
	}
	if o.StrictBlendShapes != nil {
		c.Tracking.StrictBlendShapes = *o.StrictBlendShapes
	}
	if o.Recording != nil {
		c.Tracking.Recording = *o.Recording
	}
	if o.Overlay != nil {
		c.Display.Overlay = *o.Overlay
	}
	if o.Sound != nil {
		c.Audio.Sound = *o.Sound
	}
	if o.Level != nil {
		c.Level = *o.Level
	}
	return nil
}
