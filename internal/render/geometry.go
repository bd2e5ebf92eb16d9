package render

import (
	"math"

	"koshi-chime.dev/internal/config"
)

// CellDistance computes the distance from a cell to the chamber center in
// column units, accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the angle from center to a cell.
// Returns radians in [0, 2π), where 0=north, increasing clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// WallChar returns the chamber wall character for a given angle, picked per
// 45-degree sector so the ring reads as a circle.
func WallChar(angle float64) rune {
	for angle < 0 {
		angle += 2 * math.Pi
	}
	for angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}

	sector := int(math.Round(angle/(math.Pi/4))) % 8
	switch sector {
	case 0, 4: // N, S
		return '-'
	case 2, 6: // E, W
		return '|'
	case 1, 5: // NE, SW
		return '/'
	case 3, 7: // SE, NW
		return '\\'
	default:
		return '.'
	}
}

// SimToCell maps chamber coordinates to a cell position given the chamber
// scale (cells per simulation unit).
func SimToCell(x, y float64, centerX, centerY int, scale float64) (col, row int) {
	col = centerX + int(math.Round(x*scale))
	row = centerY + int(math.Round(y*scale*config.AspectRatio))
	return col, row
}
