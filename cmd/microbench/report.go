package main

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/alexshd/microbench"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noisyStyle  = cellStyle.Foreground(lipgloss.Color("214"))
)

// noisyCV marks results whose CV column is highlighted.
const noisyCV = 10.0

func renderResults(results []microbench.NamedResult) string {
	t := newTable("CASE", "AVG", "MIN", "MAX", "STDDEV", "CV", "ITERATIONS")

	noisy := make(map[int]bool)
	for i, nr := range results {
		r := nr.Result
		noisy[i] = r.CV() >= noisyCV
		t.Row(
			nr.Name,
			r.Avg().String(),
			r.Min().String(),
			r.Max().String(),
			time.Duration(r.StdDevNs()).String(),
			fmt.Sprintf("%.2f%%", r.CV()),
			humanize.Comma(clampInt64(r.Iterations)),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 5 && noisy[row] {
			return noisyStyle
		}
		return cellStyle
	})
	return t.Render()
}

func renderSweep(points []microbench.ScalingPoint) string {
	t := newTable("SIZE", "AVG", "NS/ELEM", "CV").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, p := range points {
		perElem := 0.0
		if p.Size > 0 {
			perElem = float64(p.Result.AvgNs) / float64(p.Size)
		}
		t.Row(
			humanize.Comma(int64(p.Size)),
			p.Result.Avg().String(),
			fmt.Sprintf("%.3f", perElem),
			fmt.Sprintf("%.2f%%", p.Result.CV()),
		)
	}
	return t.Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
