package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugGlyphWidth ebitenutil 调试字体的字符宽度（像素）
const debugGlyphWidth = 6

var (
	arenaFloorColor  = color.RGBA{R: 30, G: 60, B: 90, A: 255}
	arenaBorderColor = color.RGBA{R: 120, G: 160, B: 200, A: 255}
)

// Viewport 世界坐标（X/Z 平面）到屏幕像素的映射
// 世界原点位于屏幕中心，+X 向右，+Z 向下
type Viewport struct {
	Width         int
	Height        int
	PixelsPerUnit float64
}

// WorldToScreen 把世界坐标转换为屏幕坐标
func (v Viewport) WorldToScreen(p mgl64.Vec3) (float64, float64) {
	return float64(v.Width)/2 + p.X()*v.PixelsPerUnit,
		float64(v.Height)/2 + p.Z()*v.PixelsPerUnit
}

// RenderSystem 绘制场地、实体和文本标签
//
// 渲染顺序（从底到顶）：场地 → 触发器 → 刚体 → 文本标签。
// 未激活的实体不绘制。Draw 不修改任何组件。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	viewport      Viewport
	arena         ArenaBounds
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, viewport Viewport, arena ArenaBounds) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		viewport:      viewport,
		arena:         arena,
	}
}

// Draw 绘制整个世界
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawArena(screen)

	sprites := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	// 先画触发器，再画刚体，保证玩家在最上层
	for _, id := range sprites {
		if !ecs.HasComponent[*components.RigidbodyComponent](s.entityManager, id) {
			s.drawSprite(screen, id)
		}
	}
	for _, id := range sprites {
		if ecs.HasComponent[*components.RigidbodyComponent](s.entityManager, id) {
			s.drawSprite(screen, id)
		}
	}

	s.drawLabels(screen)
}

func (s *RenderSystem) drawArena(screen *ebiten.Image) {
	if s.arena.HalfWidth <= 0 || s.arena.HalfDepth <= 0 {
		return
	}
	x, y := s.viewport.WorldToScreen(mgl64.Vec3{-s.arena.HalfWidth, 0, -s.arena.HalfDepth})
	w := 2 * s.arena.HalfWidth * s.viewport.PixelsPerUnit
	h := 2 * s.arena.HalfDepth * s.viewport.PixelsPerUnit

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), arenaFloorColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, arenaBorderColor, false)
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	if active, ok := ecs.GetComponent[*components.ActiveComponent](s.entityManager, id); ok && !active.Active {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	cx, cy := s.viewport.WorldToScreen(pos.Position)
	r := float32(sprite.Radius * s.viewport.PixelsPerUnit)
	x, y := float32(cx), float32(cy)

	switch sprite.Shape {
	case components.ShapeDiamond:
		vector.StrokeLine(screen, x, y-r, x+r, y, 2, sprite.Color, true)
		vector.StrokeLine(screen, x+r, y, x, y+r, 2, sprite.Color, true)
		vector.StrokeLine(screen, x, y+r, x-r, y, 2, sprite.Color, true)
		vector.StrokeLine(screen, x-r, y, x, y-r, 2, sprite.Color, true)
	default:
		vector.DrawFilledCircle(screen, x, y, r, sprite.Color, true)
	}
}

func (s *RenderSystem) drawLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextLabelComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.TextLabelComponent](s.entityManager, id)
		if label.Text == "" {
			continue
		}
		x, y := LabelOrigin(label)
		ebitenutil.DebugPrintAt(screen, label.Text, x, y)
	}
}

// LabelOrigin 返回标签文本左上角的屏幕坐标
// 居中标签按调试字体宽度计算偏移
func LabelOrigin(label *components.TextLabelComponent) (int, int) {
	x := label.X
	if label.Centered {
		x -= float64(len([]rune(label.Text))*debugGlyphWidth) / 2
	}
	return int(x), int(label.Y)
}
