package facetracking

// Tracker 缓存最新的 blend shape 快照和追踪开关
//
// 状态机：
//   - 初始：未追踪，无快照
//   - added：开启追踪，替换快照
//   - updated：仅替换快照（追踪状态不变）
//   - removed：关闭追踪，快照保留（不清空）
//
// Tracker 不是并发安全的，只能在游戏主循环中使用。
type Tracker struct {
	enabled     bool
	blendShapes BlendShapes
}

// NewTracker 创建一个未追踪状态的 Tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnFaceAdded 开启追踪并替换快照
func (t *Tracker) OnFaceAdded(anchor FaceAnchor) {
	t.enabled = true
	t.blendShapes = anchor.BlendShapes.Clone()
}

// OnFaceUpdated 替换快照
func (t *Tracker) OnFaceUpdated(anchor FaceAnchor) {
	t.blendShapes = anchor.BlendShapes.Clone()
}

// OnFaceRemoved 关闭追踪，快照保留
func (t *Tracker) OnFaceRemoved(anchor FaceAnchor) {
	t.enabled = false
}

// IsTrackingEnabled 返回当前是否正在追踪人脸
func (t *Tracker) IsTrackingEnabled() bool {
	return t.enabled
}

// BlendShapes 返回缓存的快照
// 只应在 IsTrackingEnabled 为 true 时读取，否则可能是过期数据或 nil
func (t *Tracker) BlendShapes() BlendShapes {
	return t.blendShapes
}
