package facetracking

// DefaultSimulatorDecay 模拟数值每秒衰减量（1.0 的按键约 0.25 秒回落到 0）
const DefaultSimulatorDecay = 4.0

// Simulator 用键盘模拟人脸追踪，便于在没有 AR 设备时游玩和调试
//
// Press 把对应 blend shape 设为 1.0，之后按 Decay 线性回落；
// 每次 Advance 都会发送一次 updated 事件，与真实设备逐帧更新的节奏一致。
type Simulator struct {
	Identifier string
	Decay      float64

	present bool
	values  BlendShapes
}

// NewSimulator 创建模拟器，初始状态下人脸不存在
func NewSimulator() *Simulator {
	s := &Simulator{
		Identifier: "simulated-face",
		Decay:      DefaultSimulatorDecay,
		values:     BlendShapes{},
	}
	for _, loc := range DiagnosticLocations {
		s.values[loc] = 0
	}
	return s
}

// IsPresent 返回模拟人脸是否存在
func (s *Simulator) IsPresent() bool {
	return s.present
}

// Press 把指定 blend shape 设为最大值
func (s *Simulator) Press(location BlendShapeLocation) {
	s.values[location] = 1.0
}

// Toggle 切换模拟人脸的存在状态，并立即发送 added 或 removed 事件
func (s *Simulator) Toggle(sink AnchorListener) {
	s.present = !s.present
	anchor := FaceAnchor{Identifier: s.Identifier, BlendShapes: s.values.Clone()}
	if s.present {
		sink.OnFaceAdded(anchor)
	} else {
		sink.OnFaceRemoved(anchor)
	}
}

// Advance 衰减所有数值；人脸存在时发送 updated 事件
func (s *Simulator) Advance(deltaTime float64, sink AnchorListener) {
	for loc, v := range s.values {
		v -= s.Decay * deltaTime
		if v < 0 {
			v = 0
		}
		s.values[loc] = v
	}

	if s.present {
		sink.OnFaceUpdated(FaceAnchor{Identifier: s.Identifier, BlendShapes: s.values.Clone()})
	}
}

// Value 返回模拟器中的当前数值
func (s *Simulator) Value(location BlendShapeLocation) float64 {
	return s.values[location]
}
