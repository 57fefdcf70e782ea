package game

import (
	"log"

	"github.com/gonewx/facepilot/pkg/config"
)

// GameSettings 运行时可切换的设置
// 只保存在内存中，重启后恢复为配置文件中的值
type GameSettings struct {
	SoundVolume  float64 // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    // 音效开关
	Overlay      bool    // 是否显示 blend shape 诊断面板
	Fullscreen   bool    // 是否全屏
}

// SettingsManager 设置管理器
type SettingsManager struct {
	settings *GameSettings
}

// NewSettingsManager 根据游戏配置创建设置管理器
func NewSettingsManager(cfg *config.GameConfig) *SettingsManager {
	return &SettingsManager{
		settings: &GameSettings{
			SoundVolume:  clampVolume(cfg.Audio.Volume),
			SoundEnabled: cfg.Audio.Sound,
			Overlay:      cfg.Display.Overlay,
		},
	}
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// ToggleSound 切换音效开关，返回新状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	log.Printf("[SettingsManager] Sound enabled: %v", sm.settings.SoundEnabled)
	return sm.settings.SoundEnabled
}

// ToggleOverlay 切换诊断面板，返回新状态
func (sm *SettingsManager) ToggleOverlay() bool {
	sm.settings.Overlay = !sm.settings.Overlay
	log.Printf("[SettingsManager] Overlay enabled: %v", sm.settings.Overlay)
	return sm.settings.Overlay
}

// SetFullscreen 设置全屏标记
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
