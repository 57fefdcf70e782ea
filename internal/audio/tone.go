// Package audio 生成游戏音效使用的 PCM 数据
//
// 游戏不附带音频文件，拾取和胜利提示音都由正弦波合成。
// 输出格式为 16 位有符号小端、双声道交错，可直接交给 ebiten/audio 播放。
package audio

import (
	"encoding/binary"
	"math"
)

// BytesPerFrame 每帧字节数（2 声道 × 16 位）
const BytesPerFrame = 4

// fadeSeconds 每个音符首尾的淡入淡出时长，避免爆音
const fadeSeconds = 0.005

// Note 一个正弦音符
type Note struct {
	Frequency float64 // 频率（Hz），0 表示静音
	Duration  float64 // 时长（秒）
}

// PickupChime 拾取提示音
var PickupChime = []Note{
	{Frequency: 880, Duration: 0.08},
}

// WinChime 胜利提示音（C 大调琶音）
var WinChime = []Note{
	{Frequency: 523.25, Duration: 0.1},
	{Frequency: 659.25, Duration: 0.1},
	{Frequency: 783.99, Duration: 0.1},
	{Frequency: 1046.5, Duration: 0.25},
}

// Duration 返回音符序列的总时长
func Duration(notes []Note) float64 {
	total := 0.0
	for _, n := range notes {
		total += n.Duration
	}
	return total
}

// RenderTones 把音符序列渲染为 PCM 数据
//
// 参数：
//   - sampleRate: 采样率（如 48000）
//   - notes: 依次播放的音符
//   - gain: 振幅 0.0 ~ 1.0
//
// 返回：
//   - []byte: 16 位小端双声道 PCM
func RenderTones(sampleRate int, notes []Note, gain float64) []byte {
	gain = math.Max(0, math.Min(1, gain))

	total := 0
	for _, n := range notes {
		total += int(n.Duration * float64(sampleRate))
	}
	out := make([]byte, total*BytesPerFrame)

	fade := int(fadeSeconds * float64(sampleRate))
	offset := 0
	for _, n := range notes {
		frames := int(n.Duration * float64(sampleRate))
		for i := 0; i < frames; i++ {
			env := 1.0
			if fade > 0 {
				if i < fade {
					env = float64(i) / float64(fade)
				} else if frames-1-i < fade {
					env = float64(frames-1-i) / float64(fade)
				}
			}

			v := gain * env * math.Sin(2*math.Pi*n.Frequency*float64(i)/float64(sampleRate))
			sample := uint16(int16(v * math.MaxInt16))
			binary.LittleEndian.PutUint16(out[offset:], sample)
			binary.LittleEndian.PutUint16(out[offset+2:], sample)
			offset += BytesPerFrame
		}
	}
	return out
}
