package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// ASCIIOptions sizes a terminal chart in character cells
type ASCIIOptions struct {
	Height int
	Width  int
}

// DrawSeries creates an ASCII line chart of a sampled diagram
func DrawSeries(s beam.Series, opts ASCIIOptions) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(s.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(s.Title)))))

	if len(s.Points) == 0 {
		sb.WriteString("  (no data)\n")
		return sb.String()
	}

	span := s.Points[len(s.Points)-1].X
	caption := fmt.Sprintf("%s vs Distance (m), 0 to %.2f m", s.Quantity.Label(), span)

	graph := asciigraph.Plot(s.Ys(),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	hi, lo := s.Max(), s.Min()
	sb.WriteString(fmt.Sprintf("\n  max %.3f %s at x = %.2f m\n", hi.Y, s.Quantity.Unit(), hi.X))
	sb.WriteString(fmt.Sprintf("  min %.3f %s at x = %.2f m\n", lo.Y, s.Quantity.Unit(), lo.X))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, which misaligns "·" and "²"
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
