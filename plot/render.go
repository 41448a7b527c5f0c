package plot

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer draws sampled series as a character chart of Width columns and
// Height rows, one colored marker run per curve.
type Renderer struct {
	Width   int
	Height  int
	Profile termenv.Profile
}

// Render layout defaults.
const (
	defaultWidth  = 72
	defaultHeight = 16
)

// ANSI palette cycled across curves.
var palette = []string{"4", "2", "1", "5", "3", "6"}

// NewRenderer returns a renderer sized with the layout defaults and the
// terminal's detected color profile.
func NewRenderer() *Renderer {
	return &Renderer{Width: defaultWidth, Height: defaultHeight, Profile: termenv.ColorProfile()}
}

// Render draws the series as one chart. The y axis spans membership
// [0, 1], the x axis the sampled universe; a legend line per curve follows
// the chart. Rendering a nil or empty series list yields just the frame.
func (r *Renderer) Render(title string, series []Series) string {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	type cell struct {
		marker string
		set    bool
	}
	grid := make([][]cell, height)
	for row := range grid {
		grid[row] = make([]cell, width)
	}

	for si, s := range series {
		if len(s.Y) == 0 {
			continue
		}
		marker := r.colored("•", si)
		for col := 0; col < width; col++ {
			idx := col * (len(s.Y) - 1) / max(width-1, 1)
			y := clamp01(s.Y[idx])
			row := int(float64(height-1) * (1 - y))
			grid[row][col] = cell{marker: marker, set: true}
		}
	}

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "%s\n", title)
	}
	for row := 0; row < height; row++ {
		b.WriteString("│")
		for col := 0; col < width; col++ {
			if grid[row][col].set {
				b.WriteString(grid[row][col].marker)
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n")

	for si, s := range series {
		xmin, xmax := 0.0, 0.0
		if len(s.X) > 0 {
			xmin, xmax = s.X[0], s.X[len(s.X)-1]
		}
		fmt.Fprintf(&b, "%s %s [%g, %g]\n", r.colored("•", si), s.Label, xmin, xmax)
	}

	return b.String()
}

// colored styles a marker with the palette color for series index i. The
// renderer's own profile drives the styling, so Ascii stays plain text.
func (r *Renderer) colored(marker string, i int) string {
	color := palette[i%len(palette)]

	return r.Profile.String(marker).Foreground(r.Profile.Color(color)).String()
}

// clamp01 confines a membership degree to the drawable [0,1] band.
func clamp01(y float64) float64 {
	switch {
	case y < 0:
		return 0
	case y > 1:
		return 1
	default:
		return y
	}
}
