// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/facetracking"
	"github.com/gonewx/facepilot/pkg/game"
	"github.com/gonewx/facepilot/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用 data/game.yaml
	ConfigPath string
	// Level 覆盖配置中的关卡文件路径
	Level string
	// Recording 覆盖配置中的人脸录制文件
	Recording string
	// NativeFaceSource 为 true 时人脸事件由宿主（移动端 AR）推入事件队列，
	// 不创建键盘模拟器和录制回放
	NativeFaceSource bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	tracker      *facetracking.Tracker
	faceEvents   *facetracking.EventQueue
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if cfg.Level != "" {
		gameConfig.Level = cfg.Level
	}
	if cfg.Recording != "" {
		gameConfig.Tracking.Recording = cfg.Recording
	}
	log.Printf("[App] Config loaded: speed=%.2f tickRate=%.0f strict=%v", gameConfig.Player.Speed, gameConfig.Physics.TickRate, gameConfig.Tracking.StrictBlendShapes)

	a := &App{
		gameConfig:   gameConfig,
		sceneManager: game.NewSceneManager(),
		settings:     game.NewSettingsManager(gameConfig),
		tracker:      facetracking.NewTracker(),
		faceEvents:   facetracking.NewEventQueue(),
		verbose:      cfg.Verbose,
	}

	// 选择人脸数据源
	var simulator *facetracking.Simulator
	var recording *facetracking.RecordingPlayer
	switch {
	case cfg.NativeFaceSource:
		log.Printf("[App] Face source: native host")
	case gameConfig.Tracking.Recording != "":
		rec, err := config.LoadRecording(gameConfig.Tracking.Recording)
		if err != nil {
			return nil, fmt.Errorf("人脸录制加载失败: %w", err)
		}
		recording = facetracking.NewRecordingPlayer(rec, gameConfig.Tracking.LoopRecording)
		log.Printf("[App] Face source: recording %q (%d events)", rec.Name, len(rec.Events))
	default:
		simulator = facetracking.NewSimulator()
		log.Printf("[App] Face source: keyboard simulator")
	}

	// 初始化音频
	audioManager := game.NewAudioManager(audio.NewContext(audioSampleRate), a.settings)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	a.sceneManager.SetSceneFactory(func(levelPath string) (game.Scene, error) {
		level, err := config.LoadLevelConfig(levelPath)
		if err != nil {
			return nil, err
		}
		return scenes.NewPlayScene(scenes.PlaySceneOptions{
			Config:    gameConfig,
			Level:     level,
			Tracker:   a.tracker,
			Queue:     a.faceEvents,
			Simulator: simulator,
			Recording: recording,
			Settings:  a.settings,
			Audio:     audioManager,
		})
	})

	if err := a.sceneManager.LoadLevel(gameConfig.Level); err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），返回错误时游戏结束
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Display.Width, a.gameConfig.Display.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	if err := a.sceneManager.Update(deltaTime); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Display.Width, a.gameConfig.Display.Height
}

// GameConfig 返回已加载的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// FaceEvents 返回人脸事件队列
// 宿主可以在任意 goroutine 中调用其 OnFaceAdded/OnFaceUpdated/OnFaceRemoved
func (a *App) FaceEvents() *facetracking.EventQueue {
	return a.faceEvents
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
