package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/config"
	"github.com/gonewx/facepilot/pkg/ecs"
)

// 终端字符高度约为宽度的两倍，X 方向每个世界单位占两列
const cellAspect = 2.0

// 顶部和底部各保留的行数（状态与说明）
const reservedRows = 2

const helpText = "f face  a/d blink  w/s look  r restart  o overlay  m sound  q quit"

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	winStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// cellMapper 把 X/Z 平面映射到终端字符格
type cellMapper struct {
	scale float64 // 每个世界单位对应的行数
	cx    int
	cy    int
}

// newCellMapper 让场地在终端中尽量铺满
func newCellMapper(arena config.ArenaConfig, width, height int) cellMapper {
	rows := float64(height - 2*reservedRows - 2)
	cols := float64(width - 2)

	scale := 1.0
	if arena.HalfDepth > 0 && arena.HalfWidth > 0 {
		scale = math.Min(rows/(2*arena.HalfDepth), cols/(2*arena.HalfWidth*cellAspect))
	}
	if scale <= 0 {
		scale = 0.1
	}
	return cellMapper{scale: scale, cx: width / 2, cy: height / 2}
}

func (m cellMapper) toCell(p mgl64.Vec3) (int, int) {
	x := m.cx + int(math.Round(p.X()*m.scale*cellAspect))
	y := m.cy + int(math.Round(p.Z()*m.scale))
	return x, y
}

func (g *termGame) draw() error {
	overlay, err := g.overlayLines()
	if err != nil {
		return err
	}

	g.screen.Clear()
	level := g.world.Level()
	m := newCellMapper(level.Arena, g.width, g.height)
	em := g.world.EntityManager()

	// 场地边框
	if level.Arena.HalfWidth > 0 && level.Arena.HalfDepth > 0 {
		x0, y0 := m.toCell(mgl64.Vec3{-level.Arena.HalfWidth, 0, -level.Arena.HalfDepth})
		x1, y1 := m.toCell(mgl64.Vec3{level.Arena.HalfWidth, 0, level.Arena.HalfDepth})
		for x := x0 - 1; x <= x1+1; x++ {
			g.screen.SetContent(x, y0-1, '─', nil, wallStyle)
			g.screen.SetContent(x, y1+1, '─', nil, wallStyle)
		}
		for y := y0; y <= y1; y++ {
			g.screen.SetContent(x0-1, y, '│', nil, wallStyle)
			g.screen.SetContent(x1+1, y, '│', nil, wallStyle)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em) {
		if active, ok := ecs.GetComponent[*components.ActiveComponent](em, id); ok && !active.Active {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := m.toCell(pos.Position)

		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(sprite.Color.R), int32(sprite.Color.G), int32(sprite.Color.B)))
		if id == g.world.Player() {
			style = playerStyle
		}
		g.screen.SetContent(x, y, sprite.Glyph, nil, style)
	}

	g.drawText(1, 0, g.world.CountText(), textStyle)
	if win := g.world.WinText(); win != "" {
		g.drawText((g.width-len(win))/2, g.height/2, win, winStyle)
	}

	status := "no face"
	if g.tracker.IsTrackingEnabled() {
		status = "face tracked"
	}
	g.drawText(1, g.height-2, status, dimStyle)
	if g.simulator != nil {
		g.drawText(1, g.height-1, helpText, dimStyle)
	}

	for i, line := range strings.Split(strings.TrimPrefix(overlay, "\n"), "\n") {
		g.drawText(g.width-len(line)-1, 1+i, line, dimStyle)
	}

	g.screen.Show()
	return nil
}

func (g *termGame) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
