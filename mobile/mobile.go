//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 原生端的 AR 会话（ARKit / ARCore）通过 bridge.go 中导出的
// FaceAnchorAdded / FaceAnchorUpdated / FaceAnchorRemoved 推送人脸数据。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.facepilot -o build/android/facepilot.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FacePilot.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/facepilot/pkg/app"
	"github.com/gonewx/facepilot/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          true,
		NativeFaceSource: true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 原生端回调可能来自任意线程，事件先进入队列，在游戏线程分发
	setFaceSink(gameApp.FaceEvents())

	mobile.SetGame(gameApp)
}
