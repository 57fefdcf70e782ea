// replay_session 无界面回放一段人脸录制，输出计数与胜利结果
//
// 用于在没有 AR 设备的环境下验证移动映射和拾取逻辑。
//
// 用法:
//
//	go run ./cmd/replay_session -recording data/sessions/demo.yaml [-seconds 10] [-trace]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/facetracking"
	"github.com/gonewx/facepilot/pkg/systems"
	"github.com/gonewx/facepilot/pkg/world"
)

var (
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
	configPath    = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	levelPath     = flag.String("level", "", "关卡文件路径（覆盖配置）")
	recordingPath = flag.String("recording", "data/sessions/demo.yaml", "人脸录制文件")
	seconds       = flag.Float64("seconds", 0, "回放时长（秒），0 表示录制时长加 1 秒")
	trace         = flag.Bool("trace", false, "每 0.5 秒输出一次力与位置")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	result, err := replay(*configPath, *levelPath, *recordingPath, *seconds, *trace, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 回放失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s\n", result.CountText)
	if result.Won {
		fmt.Printf("✅ %s\n", systems.WinText)
	} else {
		fmt.Printf("⏳ 还差 %d 个拾取物\n", systems.WinThreshold-result.Count)
	}
}

// replayResult 回放结果
type replayResult struct {
	Steps     int
	Count     int
	Won       bool
	CountText string
}

// replay 以固定步长回放录制
func replay(configPath, levelPath, recordingPath string, duration float64, trace bool, out io.Writer) (*replayResult, error) {
	cfg, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, err
	}
	if levelPath != "" {
		cfg.Level = levelPath
	}
	level, err := config.LoadLevelConfig(cfg.Level)
	if err != nil {
		return nil, err
	}
	rec, err := config.LoadRecording(recordingPath)
	if err != nil {
		return nil, err
	}
	return replayRecording(cfg, level, rec, duration, trace, out)
}

// replayRecording 回放已加载的录制
func replayRecording(cfg *config.GameConfig, level *config.LevelConfig, rec *facetracking.Recording, duration float64, trace bool, out io.Writer) (*replayResult, error) {
	if duration <= 0 {
		duration = rec.Duration() + 1
	}

	tracker := facetracking.NewTracker()
	w, err := world.New(cfg, level, tracker)
	if err != nil {
		return nil, err
	}
	w.OnPickup = func(count int) {
		fmt.Fprintf(out, "  拾取 #%d\n", count)
	}

	player := facetracking.NewRecordingPlayer(rec, false)
	dt := cfg.FixedDeltaTime()
	traceEvery := int(0.5/dt + 0.5)

	steps := 0
	for float64(steps)*dt < duration {
		// 录制事件直接交给 Tracker：回放与物理在同一个 goroutine
		player.Advance(dt, tracker)

		if err := w.Step(dt); err != nil {
			return nil, fmt.Errorf("step %d (t=%.2fs): %w", steps, float64(steps)*dt, err)
		}
		steps++

		if trace && traceEvery > 0 && steps%traceEvery == 0 {
			traceLine(out, float64(steps)*dt, tracker, w, cfg.Player.Speed)
		}
	}

	return &replayResult{
		Steps:     steps,
		Count:     w.Count(),
		Won:       w.HasWon(),
		CountText: w.CountText(),
	}, nil
}

func traceLine(out io.Writer, t float64, tracker *facetracking.Tracker, w *world.World, speed float64) {
	pos := w.PlayerPosition()
	if !tracker.IsTrackingEnabled() {
		fmt.Fprintf(out, "t=%5.2fs  no face          pos=(%6.2f, %6.2f)\n", t, pos.X(), pos.Z())
		return
	}
	force, err := systems.ComputeMovementForce(tracker.BlendShapes(), speed)
	if err != nil {
		fmt.Fprintf(out, "t=%5.2fs  %v\n", t, err)
		return
	}
	fmt.Fprintf(out, "t=%5.2fs  force=(%6.2f, %6.2f)  pos=(%6.2f, %6.2f)\n", t, force.X(), force.Z(), pos.X(), pos.Z())
}
