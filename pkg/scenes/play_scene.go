// Package scenes 提供 ebiten 窗口中的游戏场景
package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/facetracking"
	"github.com/gonewx/facepilot/pkg/game"
	"github.com/gonewx/facepilot/pkg/systems"
	"github.com/gonewx/facepilot/pkg/utils"
	"github.com/gonewx/facepilot/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor   = color.RGBA{R: 12, G: 16, B: 24, A: 255}
	overlayPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// 诊断面板布局（像素）
const (
	overlayPanelWidth  = 170
	overlayLineHeight  = 16
	overlayPanelMargin = 10
)

// simulatorHelp 键盘模拟模式下的按键说明
const simulatorHelp = "F: face on/off  A/D: blink L/R  W/S: look up/down  R: restart  O: overlay  M: sound"

// PlaySceneOptions 创建 PlayScene 所需的依赖
type PlaySceneOptions struct {
	Config  *config.GameConfig
	Level   *config.LevelConfig
	Tracker *facetracking.Tracker
	// Queue 所有人脸事件先进入队列，在 Update 中统一交给 Tracker
	Queue *facetracking.EventQueue
	// Simulator 键盘模拟人脸，可为 nil
	Simulator *facetracking.Simulator
	// Recording 录制回放，可为 nil
	Recording *facetracking.RecordingPlayer
	Settings  *game.SettingsManager
	Audio     *game.AudioManager
}

// PlayScene 一个关卡的游戏场景
//
// 每帧依次执行：键盘输入 → 人脸数据源推进 → 事件队列分发到 Tracker →
// 固定步物理更新。Draw 只读取状态。
type PlayScene struct {
	cfg       *config.GameConfig
	tracker   *facetracking.Tracker
	queue     *facetracking.EventQueue
	simulator *facetracking.Simulator
	recording *facetracking.RecordingPlayer
	settings  *game.SettingsManager
	audio     *game.AudioManager

	world        *world.World
	stepper      *world.FixedStepper
	renderSystem *systems.RenderSystem

	// drawErr 严格模式下 Draw 中发现的 blend shape 缺失，下一次 Update 返回
	drawErr error
}

// NewPlayScene 创建游戏场景
//
// 返回：
//   - error: 关卡缺少文本标签等配置错误
func NewPlayScene(opts PlaySceneOptions) (*PlayScene, error) {
	w, err := world.New(opts.Config, opts.Level, opts.Tracker)
	if err != nil {
		return nil, err
	}

	s := &PlayScene{
		cfg:       opts.Config,
		tracker:   opts.Tracker,
		queue:     opts.Queue,
		simulator: opts.Simulator,
		recording: opts.Recording,
		settings:  opts.Settings,
		audio:     opts.Audio,
		world:     w,
		stepper:   world.NewFixedStepper(opts.Config.Physics.TickRate, opts.Config.Physics.MaxStepsPerFrame),
	}
	if s.queue == nil {
		s.queue = facetracking.NewEventQueue()
	}

	w.OnPickup = func(int) {
		if s.audio != nil {
			s.audio.PlaySound(game.SoundPickup)
		}
	}
	w.OnWin = func(int) {
		if s.audio != nil {
			s.audio.PlaySound(game.SoundWin)
		}
	}

	s.resetRenderSystem()
	log.Printf("[PlayScene] Created for level %q", opts.Level.ID)
	return s, nil
}

// World 返回场景中的关卡世界
func (s *PlayScene) World() *world.World {
	return s.world
}

// Update 处理输入并推进游戏
func (s *PlayScene) Update(deltaTime float64) error {
	if err := s.handleInput(); err != nil {
		return err
	}
	return s.advance(deltaTime)
}

// advance 推进人脸数据源与物理（不读取键盘）
func (s *PlayScene) advance(deltaTime float64) error {
	if s.drawErr != nil {
		return s.drawErr
	}

	if s.simulator != nil {
		s.simulator.Advance(deltaTime, s.queue)
	}
	if s.recording != nil {
		s.recording.Advance(deltaTime, s.queue)
	}
	s.queue.Dispatch(s.tracker)

	_, err := s.stepper.Advance(deltaTime, s.world.Step)
	return err
}

// handleInput 键盘输入
func (s *PlayScene) handleInput() error {
	// 移动端没有键盘，获胜后点击屏幕重新开始
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if tapped, _, _ := utils.IsJustTouchedOrClicked(); tapped && s.world.HasWon() {
		restart = true
	}
	if restart {
		if err := s.restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && s.settings != nil {
		s.settings.ToggleOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.settings != nil {
		s.settings.ToggleSound()
	}

	if s.simulator == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.simulator.Toggle(s.queue)
	}
	// 按住期间保持满值，松开后由模拟器衰减
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		s.simulator.Press(facetracking.EyeBlinkLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		s.simulator.Press(facetracking.EyeBlinkRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		s.simulator.Press(facetracking.EyeLookUpLeft)
		s.simulator.Press(facetracking.EyeLookUpRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		s.simulator.Press(facetracking.EyeLookDownLeft)
		s.simulator.Press(facetracking.EyeLookDownRight)
	}
	return nil
}

// restart 重新开始关卡
func (s *PlayScene) restart() error {
	if err := s.world.Restart(); err != nil {
		return err
	}
	s.stepper.Reset()
	s.resetRenderSystem()
	return nil
}

func (s *PlayScene) resetRenderSystem() {
	level := s.world.Level()
	s.renderSystem = systems.NewRenderSystem(
		s.world.EntityManager(),
		systems.Viewport{
			Width:         s.cfg.Display.Width,
			Height:        s.cfg.Display.Height,
			PixelsPerUnit: s.cfg.Display.PixelsPerUnit,
		},
		systems.ArenaBounds{HalfWidth: level.Arena.HalfWidth, HalfDepth: level.Arena.HalfDepth},
	)
}

// Draw 绘制场景
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	if text, ok := s.overlayText(); ok {
		lines := strings.Count(text, "\n") + 1
		x := s.cfg.Display.Width - overlayPanelWidth - overlayPanelMargin
		y := overlayPanelMargin
		vector.DrawFilledRect(screen, float32(x), float32(y), overlayPanelWidth, float32(lines*overlayLineHeight), overlayPanelColor, false)
		ebitenutil.DebugPrintAt(screen, text, x+6, y)
	}

	status := "no face"
	if s.tracker.IsTrackingEnabled() {
		status = "face tracked"
	}
	bottom := s.cfg.Display.Height - 2*overlayLineHeight
	ebitenutil.DebugPrintAt(screen, status, overlayPanelMargin, bottom)
	if s.simulator != nil && !utils.IsMobile() {
		ebitenutil.DebugPrintAt(screen, simulatorHelp, overlayPanelMargin, bottom+overlayLineHeight)
	}
}

// overlayText 返回诊断面板文本
// blend shape 缺失时：严格模式记录错误等待 Update 返回，宽松模式只记录日志
func (s *PlayScene) overlayText() (string, bool) {
	if s.settings != nil && !s.settings.GetSettings().Overlay {
		return "", false
	}

	text, ok, err := systems.DiagnosticOverlayText(s.tracker)
	if err != nil {
		if s.cfg.Tracking.StrictBlendShapes {
			if s.drawErr == nil {
				s.drawErr = err
			}
		} else {
			log.Printf("[PlayScene] Warning: overlay skipped: %v", err)
		}
		return "", false
	}
	return text, ok
}
