package components

// TextTarget 是可以写入文本的显示目标
type TextTarget interface {
	SetText(text string)
}

// 固定的文本标签ID
const (
	CountLabelID = "count"
	WinLabelID   = "win"
)

// TextLabelComponent 屏幕上的一段文本
// 坐标为屏幕像素坐标（左上角为原点）
type TextLabelComponent struct {
	ID   string  // 标签ID，如 "count"、"win"
	Text string  // 当前文本
	X    float64 // 屏幕X坐标
	Y    float64 // 屏幕Y坐标
	// Centered 为 true 时 X 表示文本中心
	Centered bool
}

// SetText 更新文本
func (l *TextLabelComponent) SetText(text string) {
	l.Text = text
}
