package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/facetracking"
	"github.com/gonewx/facepilot/pkg/systems"
	"github.com/gonewx/facepilot/pkg/world"
)

// termGame 终端版游戏
type termGame struct {
	screen tcell.Screen
	cfg    *config.GameConfig

	world   *world.World
	stepper *world.FixedStepper

	tracker   *facetracking.Tracker
	queue     *facetracking.EventQueue
	simulator *facetracking.Simulator
	recording *facetracking.RecordingPlayer

	sound   *chime
	overlay bool
	width   int
	height  int
}

func newTermGame(configPath, levelPath, recordingPath string) (*termGame, error) {
	cfg, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, err
	}
	if levelPath != "" {
		cfg.Level = levelPath
	}
	if recordingPath != "" {
		cfg.Tracking.Recording = recordingPath
	}

	level, err := config.LoadLevelConfig(cfg.Level)
	if err != nil {
		return nil, err
	}

	g := &termGame{
		cfg:     cfg,
		tracker: facetracking.NewTracker(),
		queue:   facetracking.NewEventQueue(),
		stepper: world.NewFixedStepper(cfg.Physics.TickRate, cfg.Physics.MaxStepsPerFrame),
		overlay: cfg.Display.Overlay,
	}

	if cfg.Tracking.Recording != "" {
		rec, err := config.LoadRecording(cfg.Tracking.Recording)
		if err != nil {
			return nil, err
		}
		g.recording = facetracking.NewRecordingPlayer(rec, cfg.Tracking.LoopRecording)
	} else {
		g.simulator = facetracking.NewSimulator()
	}

	g.world, err = world.New(cfg, level, g.tracker)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	g.screen = screen
	g.width, g.height = screen.Size()

	g.sound = newChime(cfg.Audio.Sound, cfg.Audio.Volume)
	g.world.OnPickup = func(int) { g.sound.pickup() }
	g.world.OnWin = func(int) { g.sound.win() }

	return g, nil
}

// handleInput 处理按键，返回 false 表示退出
func (g *termGame) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, nil
		}
		if ev.Key() != tcell.KeyRune {
			return true, nil
		}

		switch ev.Rune() {
		case 'q':
			return false, nil
		case 'r':
			if err := g.world.Restart(); err != nil {
				return false, err
			}
			g.stepper.Reset()
		case 'o':
			g.overlay = !g.overlay
		case 'm':
			g.sound.toggle()
		}

		if g.simulator == nil {
			return true, nil
		}
		// 终端没有按键释放事件，每次按键（含自动重复）把强度拉满
		switch ev.Rune() {
		case 'f':
			g.simulator.Toggle(g.queue)
		case 'a':
			g.simulator.Press(facetracking.EyeBlinkLeft)
		case 'd':
			g.simulator.Press(facetracking.EyeBlinkRight)
		case 'w':
			g.simulator.Press(facetracking.EyeLookUpLeft)
			g.simulator.Press(facetracking.EyeLookUpRight)
		case 's':
			g.simulator.Press(facetracking.EyeLookDownLeft)
			g.simulator.Press(facetracking.EyeLookDownRight)
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true, nil
}

// update 推进一帧
func (g *termGame) update(deltaTime float64) error {
	if g.simulator != nil {
		g.simulator.Advance(deltaTime, g.queue)
	}
	if g.recording != nil {
		g.recording.Advance(deltaTime, g.queue)
	}
	g.queue.Dispatch(g.tracker)

	_, err := g.stepper.Advance(deltaTime, g.world.Step)
	return err
}

func (g *termGame) run() error {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			ok, err := g.handleInput(ev)
			if err != nil || !ok {
				return err
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			if err := g.update(deltaTime); err != nil {
				return err
			}
			if err := g.draw(); err != nil {
				return err
			}
		}
	}
}

// overlayLines 诊断面板文本
func (g *termGame) overlayLines() (string, error) {
	if !g.overlay {
		return "", nil
	}
	text, ok, err := systems.DiagnosticOverlayText(g.tracker)
	if err != nil {
		if g.cfg.Tracking.StrictBlendShapes {
			return "", err
		}
		log.Printf("[Term] Warning: overlay skipped: %v", err)
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return text, nil
}

func (g *termGame) cleanup() {
	g.sound.close()
	g.screen.Fini()
}
