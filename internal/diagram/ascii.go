package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/goflex/internal/section"
	"github.com/charmbracelet/lipgloss"
)

const (
	asciiWidth  = 60
	asciiHeight = 16
)

var shapeFill = map[section.Shape]rune{
	section.ShapeRectangle: '█',
	section.ShapeTriangle:  '▲',
	section.ShapeParabolic: '▒',
}

// DrawASCIISliceDiagram creates an ASCII representation of the slice with
// the top layer at the bottom and the braces standing on it. The vertical
// scale is stretched to fill the drawing.
func DrawASCIISliceDiagram(data SliceDiagramData) string {
	var sb strings.Builder

	totalH := data.TotalHeight()
	if totalH <= 0 || data.Span <= 0 {
		return ""
	}
	rowH := totalH / asciiHeight
	colW := data.Span / asciiWidth
	centroidRow := asciiHeight - 1 - int(math.Floor(data.Centroid/rowH))

	sb.WriteString("\n")
	sb.WriteString("  SLICE SECTION (vertical scale exaggerated)\n")
	sb.WriteString("  ──────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", asciiWidth)))

	for row := 0; row < asciiHeight; row++ {
		y := totalH - (float64(row)+0.5)*rowH

		line := make([]rune, asciiWidth)
		for col := range line {
			x := -data.Span/2 + (float64(col)+0.5)*colW
			line[col] = cellAt(data, x, y, colW)
		}

		sb.WriteString("  │")
		sb.WriteString(string(line))
		sb.WriteString("│")
		if row == centroidRow {
			sb.WriteString(fmt.Sprintf(" ◄─ ȳ = %.2f mm", data.Centroid))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", asciiWidth)))
	sb.WriteString(fmt.Sprintf("  ├%s┤ span = %.0f mm\n", strings.Repeat("─", asciiWidth), data.Span))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▓▓▓ = Top layer\n")
	sb.WriteString("  ███ = Rectangular segment   ▲▲▲ = Triangular segment   ▒▒▒ = Parabolic segment\n")
	sb.WriteString(fmt.Sprintf("  Total height = %.1f mm, braces = %d\n", totalH, len(data.Braces)))

	return sb.String()
}

// cellAt picks the character covering point (x, y)
func cellAt(data SliceDiagramData, x, y, colW float64) rune {
	if y < data.TopThickness {
		return '▓'
	}

	for _, b := range data.Braces {
		for _, seg := range b.Segments {
			y0 := data.TopThickness + seg.Base
			if y < y0 || y >= y0+seg.Height {
				continue
			}
			// keep narrow braces visible
			half := math.Max(b.Width*WidthFraction(seg.Shape, (y-y0)/seg.Height)/2, colW/2)
			if math.Abs(x-b.Offset) <= half {
				return shapeFill[seg.Shape]
			}
		}
	}
	return ' '
}

var summaryBox = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Padding(0, 2)

var summaryTitle = lipgloss.NewStyle().Bold(true)

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	body := summaryTitle.Render(title) + "\n\n" + strings.Join(lines, "\n")
	return indent(summaryBox.Render(body), "  ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
