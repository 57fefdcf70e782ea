// facepilot-term 在终端中运行游戏
//
// 与窗口版共用 pkg/world，渲染使用 tcell，提示音使用 beep。
//
// 用法:
//
//	go run ./cmd/facepilot-term [-config data/game.yaml] [-recording data/sessions/demo.yaml] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

var (
	verbose    = flag.Bool("verbose", false, "把调试日志写入 facepilot-term.log")
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	levelPath  = flag.String("level", "", "关卡文件路径（覆盖配置）")
	recording  = flag.String("recording", "", "人脸录制文件（为空则使用键盘模拟）")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create("facepilot-term.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	g, err := newTermGame(*configPath, *levelPath, *recording)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	runErr := g.run()
	g.cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "游戏结束: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("%s\n", g.world.CountText())
}
