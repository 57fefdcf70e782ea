package facetracking

// FaceAnchor 是一次人脸锚点事件携带的数据
type FaceAnchor struct {
	Identifier  string      // 锚点标识，多张人脸时不做区分（最后一个事件生效）
	BlendShapes BlendShapes // 当前帧的 blend shape 数值
}

// AnchorListener 接收人脸锚点的三个生命周期事件
//
// 所有方法都在游戏主循环的 goroutine 上调用；来自其他线程的事件
// 需要先进入 EventQueue，再由 EventQueue.Dispatch 投递。
type AnchorListener interface {
	OnFaceAdded(anchor FaceAnchor)
	OnFaceUpdated(anchor FaceAnchor)
	OnFaceRemoved(anchor FaceAnchor)
}

// AnchorEventKind 锚点事件类型
type AnchorEventKind int

const (
	AnchorAdded AnchorEventKind = iota
	AnchorUpdated
	AnchorRemoved
)

// String 返回事件类型在录制文件中使用的名称
func (k AnchorEventKind) String() string {
	switch k {
	case AnchorAdded:
		return "added"
	case AnchorUpdated:
		return "updated"
	case AnchorRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ParseAnchorEventKind 解析事件类型名称
func ParseAnchorEventKind(s string) (AnchorEventKind, bool) {
	switch s {
	case "added":
		return AnchorAdded, true
	case "updated":
		return AnchorUpdated, true
	case "removed":
		return AnchorRemoved, true
	default:
		return 0, false
	}
}

// AnchorEvent 一个待投递的锚点事件
type AnchorEvent struct {
	Kind   AnchorEventKind
	Anchor FaceAnchor
}

// Deliver 把事件投递给监听器
func (e AnchorEvent) Deliver(listener AnchorListener) {
	switch e.Kind {
	case AnchorAdded:
		listener.OnFaceAdded(e.Anchor)
	case AnchorUpdated:
		listener.OnFaceUpdated(e.Anchor)
	case AnchorRemoved:
		listener.OnFaceRemoved(e.Anchor)
	}
}
