package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/facepilot/pkg/app"
	"github.com/gonewx/facepilot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	levelPath  = flag.String("level", "", "关卡文件路径（覆盖配置）")
	recording  = flag.String("recording", "", "人脸录制文件（覆盖配置，为空则使用键盘模拟）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，磁盘上没有数据文件时使用
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Level:      *levelPath,
		Recording:  *recording,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
