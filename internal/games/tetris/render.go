package tetris

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout, in terminal cells. A field cell is two columns wide.
const (
	cellW      = 2
	fieldBoxW  = FieldWidth*cellW + 2
	panelW     = 10
	boardW     = panelW + fieldBoxW + panelW
	versusGap  = 2
	minHeight  = 16
	shownLimit = DeathRow + 2 // Rows drawn when the terminal is tall enough
)

func (g *Game) minWidth() int {
	if g.mode == ModeVersus {
		return boardW*2 + versusGap
	}
	return boardW
}

// Resize follows a terminal resize without restarting the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < g.minWidth() || height < minHeight
}

// Render draws the game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", g.minWidth(), minHeight)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	total := len(g.boards)*boardW + (len(g.boards)-1)*versusGap
	ox := max(0, (dst.Width()-total)/2)
	for i, b := range g.boards {
		x := ox + i*(boardW+versusGap)
		label := "BLOCKFALL"
		if g.mode == ModeVersus {
			label = core.PlayerID(i + 1).String()
		}
		dst.DrawTextColor(x+(boardW-len(label))/2, 0, label, core.ColorBrightWhite)
		g.renderBoard(dst, b.View(), x, 1)
	}

	switch {
	case g.gameOver:
		g.renderGameOver(dst)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "[P] resume")
		g.renderControls(dst)
	}
}

func (g *Game) renderBoard(dst *core.Screen, v View, x, y int) {
	rows := min(shownLimit, dst.Height()-y-2)
	fieldX := x + panelW

	renderHold(dst, v, x, y)
	renderCounters(dst, v, x, y+6)
	g.renderField(dst, v, fieldX, y, rows)
	renderQueue(dst, v, fieldX+fieldBoxW, y, dst.Height()-y)
}

func renderHold(dst *core.Screen, v View, x, y int) {
	box := core.NewRect(x, y, panelW, 4)
	dst.DrawBox(box)
	dst.DrawText(x+1, y, "HOLD")
	if !v.HasHold {
		return
	}
	color := v.Hold.Color().Nearest()
	if v.HoldUsed {
		color = core.ColorDarkGray
	}
	drawPreview(dst, v.Hold, x+1, y+1, color)
}

func renderCounters(dst *core.Screen, v View, x, y int) {
	counter := func(row int, label string, n int) {
		color := core.ColorDarkGray
		if n >= 2 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(x+1, y+row, fmt.Sprintf("%s×%d", label, n), color)
	}
	counter(0, "COMBO", v.Combo)
	counter(1, "B2B", v.BackToBack)

	dst.DrawText(x+1, y+3, "LINES")
	dst.DrawText(x+1, y+4, fmt.Sprintf("%d", v.Stats.Lines))
	dst.DrawText(x+1, y+5, "SENT")
	dst.DrawText(x+1, y+6, fmt.Sprintf("%d", v.Stats.Attack))
	dst.DrawText(x+1, y+7, "PIECES")
	dst.DrawText(x+1, y+8, fmt.Sprintf("%d", v.Stats.Pieces))
}

func renderQueue(dst *core.Screen, v View, x, y, avail int) {
	n := min(len(v.Queue), (avail-2)/3)
	if n <= 0 {
		return
	}
	dst.DrawBox(core.NewRect(x, y, panelW, n*3+1))
	dst.DrawText(x+1, y, "NEXT")
	for i := 0; i < n; i++ {
		s := v.Queue[i]
		drawPreview(dst, s, x+1, y+1+i*3, s.Color().Nearest())
	}
}

// drawPreview draws the top two mask rows of a shape in spawn orientation.
func drawPreview(dst *core.Screen, s Shape, x, y int, color core.Color) {
	m := MaskOf(s, 0)
	for line := 0; line < 2; line++ {
		my := 3 - line
		for mx := 0; mx < 4; mx++ {
			if m[mx][my] {
				dst.DrawTextColor(x+mx*cellW, y+line, "██", color)
			}
		}
	}
}

func (g *Game) renderField(dst *core.Screen, v View, x, y, rows int) {
	dst.DrawBox(core.NewRect(x, y, fieldBoxW, rows+2))

	inner := core.NewRect(x+1, y+1, FieldWidth*cellW, rows)
	dx, dy := g.shake(v)

	put := func(fx, fy int, text string, color core.Color) {
		if fy < 0 || fy >= rows {
			return
		}
		sx := inner.X + fx*cellW + dx
		sy := inner.Y + (rows - 1 - fy) + dy
		for i, r := range []rune(text) {
			if inner.Contains(sx+i, sy) {
				dst.SetColor(sx+i, sy, r, color)
			}
		}
	}

	for fy := 0; fy < rows && fy < len(v.Rows); fy++ {
		for fx, c := range v.Rows[fy] {
			if !c.Occupied() {
				continue
			}
			color := c.Color.Nearest()
			if v.Dead {
				color = core.ColorDarkGray
			}
			put(fx, fy, "██", color)
		}
	}

	if !v.Dead {
		color := v.Falling.Shape.Color().Nearest()
		for _, c := range v.Ghost.Cells {
			put(c.X, c.Y, "░░", color)
		}
		for _, c := range v.Falling.Cells {
			put(c.X, c.Y, "██", color)
		}
	}

	if !g.cfg.Display.HideParticles {
		for _, p := range v.Particles {
			fx, fy := int(math.Floor(p.Pos.X)), int(math.Floor(p.Pos.Y))
			sx := inner.X + fx*cellW + dx
			sy := inner.Y + (rows - 1 - fy) + dy
			if fy < 0 || fy >= rows || !inner.Contains(sx, sy) || dst.Get(sx, sy) != ' ' {
				continue
			}
			if p.Model.Kind == ParticleStar {
				dst.SetColor(sx, sy, '*', core.ColorBrightWhite)
			} else {
				dst.SetColor(sx, sy, '·', p.Model.Color.Nearest())
			}
		}
	}

	// Pending garbage meter along the left border, bottom up.
	pending := 0
	for _, n := range v.Pending {
		pending += n
	}
	for i := 0; i < min(pending, rows); i++ {
		dst.SetColor(x, inner.Bottom()-1-i, '┃', core.ColorBrightRed)
	}

	midY := inner.Y + rows/3
	switch {
	case v.Dead:
		drawCenteredIn(dst, inner, midY, "TOPPED OUT", core.ColorBrightRed)
	case v.HasInfo:
		drawCenteredIn(dst, inner, midY, v.Info, infoColor(v.InfoAge, g.cfg.Timing.InfoText()))
	}
}

// shake converts the camera spring position into a small cell offset.
func (g *Game) shake(v View) (dx, dy int) {
	k := g.cfg.Display.ShakeScale
	dx = core.Clamp(int(math.Round(v.Offset.X*k)), -2, 2)
	dy = core.Clamp(int(math.Round(-v.Offset.Y*k)), -1, 1)
	return dx, dy
}

// infoColor fades the banner over its lifetime.
func infoColor(age, ttl time.Duration) core.Color {
	if ttl <= 0 {
		return core.ColorBrightWhite
	}
	switch f := float64(age) / float64(ttl); {
	case f < 1.0/3:
		return core.ColorBrightWhite
	case f < 2.0/3:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string, color core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, color)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	if res, ok := g.MatchResult(); ok {
		if res.Winner == 0 {
			title = "DRAW"
		} else {
			title = res.Winner.String() + " WINS"
		}
		drawCenteredBox(dst, title, "[R] restart  [Esc] menu")
		return
	}
	s, _ := g.Stats(core.Player1)
	drawCenteredBox(dst, fmt.Sprintf("%s  Lines: %d", title, s.Lines), "[R] restart  [Esc] menu")
}

// renderControls lists each board's keys under the pause box.
func (g *Game) renderControls(dst *core.Screen) {
	y := dst.Height()/2 + 4
	for i, b := range g.boards {
		hint := controlHints(b.binds)
		if g.mode == ModeVersus {
			hint = core.PlayerID(i+1).String() + "  " + hint
		}
		dst.DrawTextColor((dst.Width()-len([]rune(hint)))/2, y+i, hint, core.ColorGray)
	}
}

// drawCenteredBox draws a centered box with a title and subtitle.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
