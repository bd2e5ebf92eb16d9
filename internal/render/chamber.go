package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"koshi-chime.dev/internal/chime"
	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/midiout"
	"koshi-chime.dev/internal/physics"
)

var (
	colorBright = lipgloss.Color("#FFE08A")
	colorMid    = lipgloss.Color("#C98A2D")
	colorDim    = lipgloss.Color("#5A4018")
	colorBall   = lipgloss.Color("#7FD4FF")

	styleWall   = lipgloss.NewStyle().Foreground(colorMid)
	styleCenter = lipgloss.NewStyle().Foreground(colorDim)
	styleBall   = lipgloss.NewStyle().Foreground(colorBall).Bold(true)
	styleRodOff = lipgloss.NewStyle().Foreground(colorMid)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
)

type rodCell struct {
	col, row int
	rod      chime.Rod
	label    string
	labelCol int
	labelRow int
}

// Render produces the chamber display as a styled string: the circular
// wall, the 8 rods with their pitch labels and glow, and the ball.
func Render(width, height int, ball physics.Vec2, rods [config.RodCount]chime.Rod, notes [config.RodCount]uint8) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := float64(min(centerX-1, int(float64(centerY-1)/config.AspectRatio)))
	if radius < 3 {
		radius = 3
	}
	scale := radius / config.ChamberRadius

	rcs := buildRodCells(rods, notes, centerX, centerY, scale, width, height)

	ballCol, ballRow := SimToCell(ball.X, ball.Y, centerX, centerY, scale)

	// Label cells overlay everything except the ball and rod glyphs.
	type labelCell struct {
		rcIdx   int
		charIdx int
	}
	labelMap := make(map[int]labelCell)
	for i, rc := range rcs {
		for ci := 0; ci < len(rc.label); ci++ {
			key := rc.labelRow*width + rc.labelCol + ci
			labelMap[key] = labelCell{rcIdx: i, charIdx: ci}
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col == ballCol && row == ballRow {
				sb.WriteString(styleBall.Render("@"))
				continue
			}
			if rc, ok := rodAt(rcs, col, row); ok {
				sb.WriteString(renderRod(rc.rod))
				continue
			}
			if lc, ok := labelMap[row*width+col]; ok {
				rc := rcs[lc.rcIdx]
				sb.WriteString(renderLabelChar(rc.rod, rc.label[lc.charIdx]))
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func buildRodCells(rods [config.RodCount]chime.Rod, notes [config.RodCount]uint8, centerX, centerY int, scale float64, width, height int) []rodCell {
	rcs := make([]rodCell, 0, len(rods))
	for _, rod := range rods {
		col, row := SimToCell(rod.Pos.X, rod.Pos.Y, centerX, centerY, scale)

		label := midiout.PitchName(notes[rod.Index])

		// Place the label radially outward from the rod so it never
		// crosses the chamber interior.
		lc := col + 2
		lr := row
		if rod.Pos.X < -1 {
			lc = col - len(label) - 1
		} else if rod.Pos.X >= -1 && rod.Pos.X <= 1 {
			lc = col - len(label)/2
			if rod.Pos.Y < 0 {
				lr = row - 1
			} else {
				lr = row + 1
			}
		}
		if lc < 0 {
			lc = 0
		}
		if lc+len(label) > width {
			lc = width - len(label)
		}
		if lr < 0 || lr >= height {
			label = ""
		}

		rcs = append(rcs, rodCell{
			col: col, row: row,
			rod:      rod,
			label:    label,
			labelCol: lc,
			labelRow: lr,
		})
	}
	return rcs
}

func rodAt(rcs []rodCell, col, row int) (rodCell, bool) {
	for _, rc := range rcs {
		if rc.col == col && rc.row == row {
			return rc, true
		}
	}
	return rodCell{}, false
}

func renderRod(rod chime.Rod) string {
	intensity := GlowIntensity(rod.Glow)
	if c := glowColor(intensity); c != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true).Render("O")
	}
	return styleRodOff.Render("o")
}

func renderLabelChar(rod chime.Rod, ch byte) string {
	intensity := GlowIntensity(rod.Glow)
	if c := glowColor(intensity); c != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(ch))
	}
	return styleLabel.Render(string(ch))
}

func renderCell(col, row, centerX, centerY int, radius float64) string {
	dist := CellDistance(col, row, centerX, centerY)

	if dist > radius+0.8 {
		return " "
	}
	if absFloat(dist-radius) < 0.8 {
		return styleWall.Render(string(WallChar(CellAngle(col, row, centerX, centerY))))
	}
	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}
	return " "
}

// RenderLegend produces the line under the chamber.
func RenderLegend(width int) string {
	legend := styleBall.Render("@ ball") +
		"  " +
		lipgloss.NewStyle().Foreground(colorBright).Render("O struck") +
		"  " +
		styleRodOff.Render("o rod")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
