package config

import (
	"fmt"

	"github.com/gonewx/facepilot/pkg/facetracking"
)

// LoadRecording 加载人脸录制文件（磁盘优先，其次嵌入资源）
func LoadRecording(path string) (*facetracking.Recording, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	return facetracking.ParseRecording(data)
}
