package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/systems"
)

// 校验 data/ 下的全部配置：游戏配置、关卡、人脸录制
//
// 用法：go run tools/validate_yaml.go
func main() {
	failed := 0

	cfg, err := config.LoadGameConfig(config.DefaultGameConfigPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", config.DefaultGameConfigPath, err)
		failed++
	} else {
		fmt.Printf("✅ %s (speed=%.2f, tickRate=%.0f)\n", config.DefaultGameConfigPath, cfg.Player.Speed, cfg.Physics.TickRate)
	}

	levels, _ := filepath.Glob("data/levels/*.yaml")
	for _, path := range levels {
		level, err := config.LoadLevelConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		missing := 0
		for _, id := range []string{"count", "win"} {
			if _, ok := level.Label(id); !ok {
				fmt.Printf("❌ %s: 缺少文本标签 %q\n", path, id)
				missing++
			}
		}
		failed += missing

		pickups := len(level.PickupPositions())
		if pickups < systems.WinThreshold {
			fmt.Printf("⚠️  %s: 只有 %d 个拾取物，无法达到获胜数量 %d\n", path, pickups, systems.WinThreshold)
		}
		if missing == 0 {
			fmt.Printf("✅ %s (%d 个拾取物)\n", path, pickups)
		}
	}

	sessions, _ := filepath.Glob("data/sessions/*.yaml")
	for _, path := range sessions {
		rec, err := config.LoadRecording(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s (%d 个事件, %.1f 秒)\n", path, len(rec.Events), rec.Duration())
	}

	if failed > 0 {
		fmt.Printf("❌ 共 %d 个错误\n", failed)
		os.Exit(1)
	}
}
