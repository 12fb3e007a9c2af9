// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - hits
	colorRed   = lipgloss.Color("167") // Soft red - misses
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)
	styleHit   = lipgloss.NewStyle().Foreground(colorGreen)
	styleMiss  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewLen is how many leading values are shown for long sequences.
const previewLen = 10

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render("== "+title+" =="))
}

func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", styleLabel.Render(label+":"), value)
}

// preview renders at most previewLen values, appending "..." when truncated.
func preview(values []int) string {
	if len(values) <= previewLen {
		return fmt.Sprint(values)
	}
	return strings.TrimSuffix(fmt.Sprint(values[:previewLen]), "]") + " ...]"
}

func renderIndex(i int, ok bool) string {
	if !ok {
		return styleMiss.Render("not found")
	}
	return styleHit.Render("index " + strconv.Itoa(i))
}

func renderDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
