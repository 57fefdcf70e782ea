package systems

import (
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/facepilot/pkg/facetracking"
)

// FormatPercent 把 [0,1] 的强度格式化为整数百分比，如 0.125 -> "13%"
// 舍入方式为四舍五入（远离零）
func FormatPercent(v float64) string {
	return strconv.FormatInt(int64(math.Round(v*100)), 10) + "%"
}

// DiagnosticOverlayText 生成诊断面板的文本
//
// 未追踪时返回 ok=false，调用方不应绘制面板。面板以空行开头，
// 每行一个 blend shape：`eyeBlink_L = 20%`。
//
// 返回：
//   - string: 面板文本
//   - bool: 是否需要绘制
//   - error: 缺少 blend shape 时的错误
func DiagnosticOverlayText(state TrackingState) (string, bool, error) {
	if !state.IsTrackingEnabled() {
		return "", false, nil
	}

	shapes := state.BlendShapes()
	var b strings.Builder
	b.WriteString("\n")
	for _, loc := range facetracking.DiagnosticLocations {
		v, err := shapes.Value(loc)
		if err != nil {
			return "", false, err
		}
		b.WriteString(loc)
		b.WriteString(" = ")
		b.WriteString(FormatPercent(v))
		b.WriteString("\n")
	}
	return b.String(), true, nil
}
