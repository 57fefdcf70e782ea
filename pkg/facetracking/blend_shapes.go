// Package facetracking 接收人脸追踪子系统的锚点生命周期事件，并缓存最新的 blend shape 数值
//
// 追踪数据的来源可以是原生 AR 宿主（通过 mobile 桥接）、录制文件回放或键盘模拟，
// 它们都通过 AnchorListener 接口把事件投递给 Tracker。
package facetracking

import (
	"errors"
	"fmt"
	"maps"
)

// BlendShapeLocation 是 blend shape 的名称（与 ARKit 的键名一致）
type BlendShapeLocation = string

// 控制移动所需的 blend shape 键
const (
	EyeBlinkLeft     BlendShapeLocation = "eyeBlink_L"
	EyeBlinkRight    BlendShapeLocation = "eyeBlink_R"
	EyeLookUpLeft    BlendShapeLocation = "eyeLookUp_L"
	EyeLookUpRight   BlendShapeLocation = "eyeLookUp_R"
	EyeLookDownLeft  BlendShapeLocation = "eyeLookDown_L"
	EyeLookDownRight BlendShapeLocation = "eyeLookDown_R"
)

// DiagnosticLocations 诊断面板按顺序显示的 blend shape
var DiagnosticLocations = []BlendShapeLocation{
	EyeBlinkLeft,
	EyeBlinkRight,
	EyeLookUpLeft,
	EyeLookUpRight,
	EyeLookDownLeft,
	EyeLookDownRight,
}

// ErrBlendShapeMissing 表示缓存中缺少必需的 blend shape
var ErrBlendShapeMissing = errors.New("blend shape missing")

// BlendShapes 是 blend shape 名称到强度（通常在 [0,1]）的映射
type BlendShapes map[BlendShapeLocation]float64

// Value 返回指定 blend shape 的强度
// 键不存在时返回包装了 ErrBlendShapeMissing 的错误
func (b BlendShapes) Value(location BlendShapeLocation) (float64, error) {
	v, ok := b[location]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrBlendShapeMissing, location)
	}
	return v, nil
}

// Clone 返回映射的浅拷贝，nil 保持为 nil
func (b BlendShapes) Clone() BlendShapes {
	if b == nil {
		return nil
	}
	return maps.Clone(b)
}
