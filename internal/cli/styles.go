package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("15"),
	cube.Yellow: lipgloss.Color("11"),
	cube.Red:    lipgloss.Color("9"),
	cube.Orange: lipgloss.Color("208"),
	cube.Green:  lipgloss.Color("10"),
	cube.Blue:   lipgloss.Color("12"),
}

func sticker(c cube.Color) string {
	bg, ok := stickerColors[c]
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(bg).Render("  ")
}

// renderNet draws the cube as a coloured unfolded net with the top face
// above and the bottom face below the left, front, right and back row.
func renderNet(c *cube.Cube) string {
	faceRows := func(f cube.Face) [3]string {
		colors, _ := c.Face(f)
		var rows [3]string
		for r := 0; r < 3; r++ {
			var b strings.Builder
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(colors[r*3+col]))
			}
			rows[r] = b.String()
		}
		return rows
	}

	pad := strings.Repeat(" ", 7)
	var b strings.Builder
	for _, row := range faceRows(cube.Top) {
		b.WriteString(pad + row + "\n")
	}
	middle := [][3]string{
		faceRows(cube.Left),
		faceRows(cube.Front),
		faceRows(cube.Right),
		faceRows(cube.Back),
	}
	for r := 0; r < 3; r++ {
		for i, face := range middle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(face[r])
		}
		b.WriteByte('\n')
	}
	for _, row := range faceRows(cube.Bottom) {
		b.WriteString(pad + row + "\n")
	}
	return b.String()
}
