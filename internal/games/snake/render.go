package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette is the resolved form of config colors and glyphs.
type palette struct {
	background core.Color
	body       core.Color
	border     core.Color
	target     core.Color
	hud        core.Color
	bodyGlyph  [cellWidth]rune
	foodGlyph  [cellWidth]rune
}

// newPalette resolves color names. Unknown names fall back to the terminal
// default; config.Validate reports them before a game is built.
func newPalette(cfg config.SnakeConfig) palette {
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}
	return palette{
		background: color(cfg.Colors.Background),
		body:       color(cfg.Colors.Body),
		border:     color(cfg.Colors.Border),
		target:     color(cfg.Colors.Target),
		hud:        color(cfg.Colors.HUD),
		bodyGlyph:  glyph(cfg.Glyphs.Body, '[', ']'),
		foodGlyph:  glyph(cfg.Glyphs.Target, '(', ')'),
	}
}

func glyph(s string, left, right rune) [cellWidth]rune {
	r := []rune(s)
	if len(r) != cellWidth {
		return [cellWidth]rune{left, right}
	}
	return [cellWidth]rune{r[0], r[1]}
}

// Render redraws everything: frame and background, body, target, then the
// score overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		return
	}

	if g.tooSmall {
		g.renderHUD(dst)
		w, h := g.world.Size()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, try snake_fullscreen", w*cellWidth+2, hudHeight+h+2))
		return
	}

	g.renderBoard(dst)

	for _, seg := range g.world.Body() {
		g.drawCell(dst, seg, g.palette.bodyGlyph, g.palette.body)
	}

	if target, ok := g.world.Target(); ok {
		g.drawCell(dst, target, g.palette.foodGlyph, g.palette.target)
	}

	g.renderHUD(dst)
}

// renderBoard draws the frame and fills the grid with the background color.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.world.Size()
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, w*cellWidth+2, h+2))
	dst.FillRect(
		core.NewRect(g.offsetX, g.offsetY, w*cellWidth, h),
		core.Cell{Rune: ' ', Bg: g.palette.background},
	)
}

// drawCell paints one grid cell as a filled, bordered block: the glyph
// runes in the border color over the fill color.
func (g *Game) drawCell(dst *core.Screen, p Point, glyph [cellWidth]rune, fill core.Color) {
	sx := g.offsetX + p.X*cellWidth
	sy := g.offsetY + p.Y
	for i, r := range glyph {
		dst.SetCell(sx+i, sy, core.Cell{Rune: r, Fg: g.palette.border, Bg: fill})
	}
}

// renderHUD draws the score line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Best: %d  Length: %d",
		g.Title(), g.score, g.best, len(g.world.Body()))
	dst.DrawTextColor(0, 0, hud, g.palette.hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
