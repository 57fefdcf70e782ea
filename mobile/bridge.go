package mobile

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gonewx/facepilot/pkg/facetracking"
)

// ErrBridgeNotReady 表示游戏尚未初始化，无法接收人脸事件
var ErrBridgeNotReady = errors.New("face bridge not ready")

var (
	sinkMu   sync.RWMutex
	faceSink facetracking.AnchorListener
)

// setFaceSink 设置人脸事件的接收方（通常是 App 的事件队列）
func setFaceSink(sink facetracking.AnchorListener) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	faceSink = sink
}

// FaceAnchorAdded 原生端检测到人脸时调用
//
// 参数：
//   - identifier: 锚点标识
//   - payloadJSON: blend shape 强度，如 {"eyeBlink_L":0.1,"eyeBlink_R":0.0,...}
func FaceAnchorAdded(identifier, payloadJSON string) error {
	return deliver(facetracking.AnchorAdded, identifier, payloadJSON)
}

// FaceAnchorUpdated 原生端每帧更新人脸数据时调用
func FaceAnchorUpdated(identifier, payloadJSON string) error {
	return deliver(facetracking.AnchorUpdated, identifier, payloadJSON)
}

// FaceAnchorRemoved 原生端丢失人脸时调用，payloadJSON 可为空
func FaceAnchorRemoved(identifier, payloadJSON string) error {
	return deliver(facetracking.AnchorRemoved, identifier, payloadJSON)
}

func deliver(kind facetracking.AnchorEventKind, identifier, payloadJSON string) error {
	sinkMu.RLock()
	sink := faceSink
	sinkMu.RUnlock()
	if sink == nil {
		return ErrBridgeNotReady
	}

	shapes, err := facetracking.DecodeBlendShapes([]byte(payloadJSON))
	if err != nil {
		log.Printf("[MobileBridge] Rejected %s event for %q: %v", kind, identifier, err)
		return fmt.Errorf("face anchor %s: %w", kind, err)
	}

	facetracking.AnchorEvent{
		Kind:   kind,
		Anchor: facetracking.FaceAnchor{Identifier: identifier, BlendShapes: shapes},
	}.Deliver(sink)
	return nil
}
