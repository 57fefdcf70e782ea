package game

import (
	"log"

	"github.com/gonewx/facepilot/internal/audio"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundPickup = "SOUND_PICKUP"
	SoundWin    = "SOUND_WIN"
)

// soundNotes 音效ID到合成音符的映射
var soundNotes = map[string][]audio.Note{
	SoundPickup: audio.PickupChime,
	SoundWin:    audio.WinChime,
}

// AudioManager 音频管理器
// 职责：
//   - 按需合成并缓存音效播放器
//   - 播放时应用 SettingsManager 中的音效开关与音量
//
// context 为 nil 时（无界面回放、测试）所有播放请求直接忽略。
type AudioManager struct {
	context         *ebitenaudio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*ebitenaudio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例，可为 nil（使用默认音量）
func NewAudioManager(ctx *ebitenaudio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*ebitenaudio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PreloadSounds 预先合成全部音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds() {
	if am.context == nil {
		return
	}
	for id := range soundNotes {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundNotes))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *ebitenaudio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	notes, ok := soundNotes[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	// 以满振幅合成，音量由播放器控制
	pcm := audio.RenderTones(am.context.SampleRate(), notes, 1.0)
	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.5
}
