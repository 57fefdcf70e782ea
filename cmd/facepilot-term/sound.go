package main

import (
	"log"
	"math"
	"time"

	"github.com/gonewx/facepilot/internal/audio"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// chime 终端版提示音
type chime struct {
	sampleRate beep.SampleRate
	volume     float64
	ready      bool
	enabled    bool
}

// newChime 初始化扬声器，失败时静默运行
func newChime(enabled bool, volume float64) *chime {
	c := &chime{
		sampleRate: beep.SampleRate(44100),
		volume:     volume,
		enabled:    enabled,
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		// 没有音频设备时游戏照常运行
		log.Printf("[Term] Audio initialization failed: %v", err)
		return c
	}
	c.ready = true
	return c
}

func (c *chime) pickup() {
	c.play(audio.PickupChime)
}

func (c *chime) win() {
	c.play(audio.WinChime)
}

func (c *chime) toggle() {
	c.enabled = !c.enabled
}

// play 依次播放音符序列
func (c *chime) play(notes []audio.Note) {
	if !c.ready || !c.enabled || c.volume <= 0 {
		return
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s := c.streamer(n)
		if s == nil {
			return
		}
		streamers = append(streamers, s)
	}
	speaker.Play(beep.Seq(streamers...))
}

// streamer 生成一个限定时长、按音量衰减的正弦音，频率为 0 时返回静音
func (c *chime) streamer(n audio.Note) beep.Streamer {
	samples := c.sampleRate.N(time.Duration(n.Duration * float64(time.Second)))
	if n.Frequency <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(c.sampleRate, n.Frequency)
	if err != nil {
		log.Printf("[Term] Failed to create tone: %v", err)
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(samples, sine),
		Base:     2,
		Volume:   math.Log2(c.volume),
	}
}

func (c *chime) close() {
	if c.ready {
		speaker.Close()
	}
}
