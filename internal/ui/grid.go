package ui

import (
	"strings"

	"github.com/rnwolfe/habitkit/internal/habit"
)

// Grid cell glyphs. Each cell is two columns wide.
const (
	cellDone     = "■"
	cellMissed   = "·"
	cellInactive = " "
	cellWidth    = 2
	// gutter is the width of the weekday label column.
	gutter = 4
)

var weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// GridWeeksFor returns how many week columns fit in width terminal columns.
func GridWeeksFor(width int) int {
	n := (width - gutter) / cellWidth
	return max(n, 1)
}

// RenderGrid draws weeks as a seven-row activity grid: one column per week,
// Sunday at the top, with month labels above and a legend below. Completed
// days use the habit color.
func RenderGrid(weeks []habit.Week, color string) string {
	if len(weeks) == 0 {
		return Muted.Render("  (no days to show yet)")
	}

	done := HabitStyle(color)
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(Muted.Render(monthRow(weeks)))
	b.WriteString("\n")

	for row := 0; row < 7; row++ {
		b.WriteString(Muted.Render(padRight(weekdayLabels[row], gutter)))
		for _, w := range weeks {
			if row >= len(w) {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			d := w[row]
			switch {
			case d.Inactive:
				b.WriteString(cellInactive)
			case d.Completed:
				b.WriteString(done.Render(cellDone))
			default:
				b.WriteString(Muted.Render(cellMissed))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(Muted.Render("Less " + cellMissed + " "))
	b.WriteString(done.Render(cellDone))
	b.WriteString(Muted.Render(" More"))
	return b.String()
}

// monthRow lays out the month labels over their week columns. A label that
// would collide with the previous one is dropped; the last may overhang.
func monthRow(weeks []habit.Week) string {
	labels := habit.MonthLabels(weeks)
	row := []rune(strings.Repeat(" ", len(weeks)*cellWidth+3))
	next := 0
	for i, label := range labels {
		col := i * cellWidth
		if label == "" || col < next {
			continue
		}
		copy(row[col:], []rune(label))
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
