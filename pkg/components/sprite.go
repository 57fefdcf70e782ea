package components

import "image/color"

// ShapeKind 渲染形状
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeDiamond
)

// SpriteComponent 描述实体的绘制方式
// 本游戏不使用贴图，所有实体都以纯色几何形状绘制
type SpriteComponent struct {
	Shape  ShapeKind
	Color  color.RGBA
	Radius float64 // 世界单位
	Glyph  rune    // 终端前端使用的字符
}
