package ui

import (
	"math"
	"strings"

	"koshi-chime.dev/internal/physics"
)

// RenderTiltGauge renders a small bubble-level style gauge: a ring with an
// arrow from the center pointing along the current calibrated tilt, longer
// for stronger tilt.
func RenderTiltGauge(width, height int, tilt physics.Vec2) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isArrow := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		isArrow[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 1.0
	ry := fcy - 1.0
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	steps := 48
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		if col >= 0 && col < width && row >= 0 && row < height && grid[row][col] == ' ' {
			grid[row][col] = '.'
		}
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))
	grid[cy][cx] = '+'

	mag := tilt.Len()
	if mag > 0.02 {
		frac := math.Min(mag, 1.0)
		angle := tilt.Angle()
		sinA := math.Sin(angle)
		cosA := math.Cos(angle)

		shaftSteps := int(math.Max(rx, ry) * frac)
		if shaftSteps < 1 {
			shaftSteps = 1
		}
		tipCol, tipRow := cx, cy
		for s := 1; s <= shaftSteps; s++ {
			t := float64(s) / float64(shaftSteps) * frac
			col := int(math.Round(fcx + t*rx*sinA))
			row := int(math.Round(fcy - t*ry*cosA))
			if col >= 0 && col < width && row >= 0 && row < height {
				grid[row][col] = shaftChar(angle)
				isArrow[row][col] = true
				tipCol, tipRow = col, row
			}
		}
		grid[tipRow][tipCol] = arrowTip(angle)
		isArrow[tipRow][tipCol] = true
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case isArrow[row][col]:
				sb.WriteString(StyleGaugeArrow.Render(string(ch)))
			case ch == '+':
				sb.WriteString(StyleGaugeArrow.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(StyleGaugeRing.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// shaftChar returns the line character for a given angle direction.
func shaftChar(a float64) byte {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	sector := int(math.Round(a/(math.Pi/4))) % 8
	switch sector {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '\\'
	case 3, 7: // SE, NW
		return '/'
	}
	return '|'
}

// arrowTip returns the arrowhead character for a given angle.
func arrowTip(a float64) byte {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	sector := int(math.Round(a/(math.Pi/4))) % 8
	switch sector {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	case 7:
		return '\\'
	}
	return '*'
}
