package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kanadn/dino-run-game/internal/config"
	"github.com/kanadn/dino-run-game/internal/core"
	"github.com/kanadn/dino-run-game/internal/game"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// planetColors gives each world its own accent.
var planetColors = map[game.Planet]core.Color{
	game.PlanetEarth:   core.ColorGreen,
	game.PlanetMoon:    core.ColorGray,
	game.PlanetMars:    core.ColorOrange,
	game.PlanetJupiter: core.ColorMagenta,
}

// Draw renders a session snapshot into the screen buffer.
func Draw(dst *core.Screen, snap game.Snapshot, cfg config.Config, profile game.PhysicsProfile) {
	dst.Clear()

	accent, ok := planetColors[snap.Planet]
	if !ok {
		accent = core.ColorDefault
	}

	groundY := dst.Height() - 2
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, accent)

	for _, o := range snap.Obstacles {
		drawCactus(dst, o, groundY)
	}

	drawRunner(dst, snap, cfg, groundY)
	drawHUD(dst, snap, profile, accent)

	switch snap.Status {
	case game.StatusReady:
		drawCenteredPanel(dst, "PLANET RUNNER",
			fmt.Sprintf("planet: %s  (←/→ to change, space to start)", snap.Planet))
	case game.StatusGameOver:
		drawCenteredPanel(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  space to play again", snap.Score))
	}
}

// drawRunner renders the player character at its current jump height.
func drawRunner(dst *core.Screen, snap game.Snapshot, cfg config.Config, groundY int) {
	x := int(cfg.Player.X)
	baseY := groundY - cfg.Player.Height - int(snap.PlayerHeight)

	// 3x3 sprite:
	//  ◆█
	// ███
	// ╱╲
	dst.SetCell(x+1, baseY, RunnerHead, core.ColorBrightWhite)
	dst.SetCell(x+2, baseY, RunnerBody, core.ColorBrightWhite)

	dst.SetCell(x, baseY+1, RunnerBody, core.ColorBrightWhite)
	dst.SetCell(x+1, baseY+1, RunnerBody, core.ColorBrightWhite)
	dst.SetCell(x+2, baseY+1, RunnerBody, core.ColorBrightWhite)

	if snap.Airborne {
		// Legs tucked
		dst.SetCell(x, baseY+2, RunnerLeg1, core.ColorBrightWhite)
		dst.SetCell(x+1, baseY+2, RunnerLeg2, core.ColorBrightWhite)
	} else {
		dst.SetCell(x, baseY+2, RunnerLeg1, core.ColorBrightWhite)
		dst.SetCell(x+2, baseY+2, RunnerLeg2, core.ColorBrightWhite)
	}
}

// drawCactus renders a single obstacle column.
func drawCactus(dst *core.Screen, o game.ObstacleView, groundY int) {
	x := int(o.X)
	w := int(o.Width)
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x+dx, groundY-o.Height+dy, CactusChar, core.ColorGreen)
		}
	}
}

// drawHUD renders the score line.
func drawHUD(dst *core.Screen, snap game.Snapshot, profile game.PhysicsProfile, accent core.Color) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)

	right := fmt.Sprintf(" %s  g=%.2f  spd=%.1f ", snap.Planet, profile.Gravity, snap.Speed)
	dst.DrawText(dst.Width()-len(right)-2, 0, right, accent)
}

// drawCenteredPanel draws a message box in the center of the screen.
func drawCenteredPanel(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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
