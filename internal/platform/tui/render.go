package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiny-bazooka/internal/core"
	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Hero animation, one entry per frame. Each frame is heroRows lines of
// heroCols runes; the shoulder-mounted tube points right.
const (
	heroCols = 4
	heroRows = 3
)

var heroFrames = [][heroRows]string{
	{" o  ", "/|==", "/ \\ "},
	{" o  ", "/|==", " |\\ "},
	{" o  ", "/|==", " |  "},
	{" o  ", "/|==", " /| "},
}

var heroAirborne = [heroRows]string{" o  ", "/|==", " ^  "}

var enemyGlyphs = []struct {
	text  string
	color core.Color
}{
	{"<@@", core.ColorRed},
	{"<%%", core.ColorOrange},
	{"<##", core.ColorBrightRed},
}

const rocketGlyph = "=>"

// projection maps world coordinates onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(view core.Vec2, cols, rows int) projection {
	p := projection{}
	if view.X > 0 {
		p.sx = float64(cols) / view.X
	}
	if view.Y > 0 {
		p.sy = float64(rows) / view.Y
	}
	return p
}

func (p projection) cell(pos core.Vec2) (int, int) {
	return int(math.Floor(pos.X * p.sx)), int(math.Floor(pos.Y * p.sy))
}

// Draw paints a snapshot onto the screen. flash highlights the score after
// a hit.
func Draw(s *core.Screen, snap bazooka.Snapshot, flash bool) {
	s.Clear()
	proj := newProjection(snap.View, s.Width(), s.Height())

	// Ground sits under the hero's feet, not under its centre.
	_, groundRow := proj.cell(core.Vec2{Y: snap.Ground + snap.Hero.Size.Y/2})
	groundRow = core.Clamp(groundRow, 0, s.Height()-1)
	s.DrawHLine(0, groundRow, s.Width(), '=', core.ColorGreen)
	s.DrawRect(core.NewRect(0, groundRow+1, s.Width(), s.Height()-groundRow-1), '.', core.ColorGray)

	drawHero(s, proj, snap.Hero)

	for _, e := range snap.Enemies {
		g := enemyGlyphs[core.Clamp(e.Tier, 0, len(enemyGlyphs)-1)]
		x, y := proj.cell(e.Pos)
		s.DrawText(x-1, y, g.text, g.color)
	}
	for _, r := range snap.Rockets {
		x, y := proj.cell(r.Pos)
		s.DrawText(x-1, y, rocketGlyph, core.ColorBrightYellow)
	}

	drawOverlay(s, snap, flash)
}

func drawHero(s *core.Screen, proj projection, h bazooka.HeroView) {
	sprite := heroAirborne
	if h.Grounded && len(heroFrames) > 0 {
		sprite = heroFrames[h.Frame%len(heroFrames)]
	}
	cx, cy := proj.cell(h.Pos)
	left := cx - heroCols/2
	top := cy - heroRows/2
	for i, line := range sprite {
		s.DrawText(left, top+i, line, core.ColorCyan)
	}
}

func drawOverlay(s *core.Screen, snap bazooka.Snapshot, flash bool) {
	switch snap.Overlay {
	case bazooka.OverlayTitle:
		row := s.Height() / 4
		s.DrawBox(titleBox(s.Width(), row, snap.Heading, snap.Tutorial), core.ColorGray)
		s.DrawTextCentered(row, snap.Heading, core.ColorBrightYellow)
		s.DrawTextCentered(row+2, snap.Tutorial, core.ColorWhite)
	case bazooka.OverlayScore:
		c := core.ColorWhite
		if flash {
			c = core.ColorBrightYellow
		}
		s.DrawText(1, 0, snap.ScoreText, c)
	}
}

// titleBox frames the heading at row and the tutorial two rows below it,
// with one blank column of padding on each side of the longer line.
func titleBox(width, row int, lines ...string) core.Rect {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 4
	return core.NewRect((width-w)/2, row-1, w, 5)
}
