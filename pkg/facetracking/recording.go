package facetracking

import (
	"fmt"
	"log"
	"sort"

	"gopkg.in/yaml.v3"
)

// RecordedEvent 录制文件中的一个锚点事件
type RecordedEvent struct {
	At          float64     `yaml:"at"`          // 相对录制开始的时间（秒）
	Kind        string      `yaml:"kind"`        // added / updated / removed
	Identifier  string      `yaml:"identifier"`  // 锚点标识
	BlendShapes BlendShapes `yaml:"blendShapes"` // removed 事件可省略
}

// Recording 一段录制好的人脸追踪会话
//
// 文件位置: data/sessions/*.yaml
type Recording struct {
	Name   string          `yaml:"name"`
	Events []RecordedEvent `yaml:"events"`
}

// ParseRecording 解析 YAML 格式的录制数据
//
// 事件按时间稳定排序；未知的事件类型或负数时间会返回错误。
func ParseRecording(data []byte) (*Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}

	for i, e := range rec.Events {
		if _, ok := ParseAnchorEventKind(e.Kind); !ok {
			return nil, fmt.Errorf("recording %q event %d: unknown kind %q", rec.Name, i, e.Kind)
		}
		if e.At < 0 {
			return nil, fmt.Errorf("recording %q event %d: negative time %.3f", rec.Name, i, e.At)
		}
	}

	sort.SliceStable(rec.Events, func(i, j int) bool {
		return rec.Events[i].At < rec.Events[j].At
	})
	return &rec, nil
}

// Duration 返回最后一个事件的时间
func (r *Recording) Duration() float64 {
	if len(r.Events) == 0 {
		return 0
	}
	return r.Events[len(r.Events)-1].At
}

// RecordingPlayer 按时间回放录制事件
type RecordingPlayer struct {
	recording *Recording
	elapsed   float64
	next      int
	loop      bool
}

// NewRecordingPlayer 创建回放器
//
// 参数：
//   - rec: 录制数据
//   - loop: 播放完毕后是否从头循环
func NewRecordingPlayer(rec *Recording, loop bool) *RecordingPlayer {
	return &RecordingPlayer{recording: rec, loop: loop}
}

// Advance 推进回放时间，把到期的事件投递给 sink
//
// 返回：
//   - int: 本次投递的事件数量
func (p *RecordingPlayer) Advance(deltaTime float64, sink AnchorListener) int {
	p.elapsed += deltaTime
	delivered := 0

	for {
		for p.next < len(p.recording.Events) && p.recording.Events[p.next].At <= p.elapsed {
			e := p.recording.Events[p.next]
			kind, _ := ParseAnchorEventKind(e.Kind)
			AnchorEvent{
				Kind:   kind,
				Anchor: FaceAnchor{Identifier: e.Identifier, BlendShapes: e.BlendShapes},
			}.Deliver(sink)
			p.next++
			delivered++
		}

		if !p.loop || p.next < len(p.recording.Events) || len(p.recording.Events) == 0 {
			return delivered
		}

		// 循环播放：扣除一轮时长后从头开始
		duration := p.recording.Duration()
		if duration <= 0 || p.elapsed < duration {
			return delivered
		}
		p.elapsed -= duration
		p.next = 0
		log.Printf("[RecordingPlayer] Recording %q looped", p.recording.Name)
	}
}

// Done 返回是否已投递全部事件（循环模式永远不会结束）
func (p *RecordingPlayer) Done() bool {
	return !p.loop && p.next >= len(p.recording.Events)
}

// Elapsed 返回当前回放时间
func (p *RecordingPlayer) Elapsed() float64 {
	return p.elapsed
}
