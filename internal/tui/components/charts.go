package components

import (
	"fmt"
	"strings"

	"github.com/catalens/catalens/internal/catalog"
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Chart renderers. All take pre-ordered data and a total width in cells;
// none of them re-sort or aggregate.

const (
	maxLabelWidth = 24
	minBarWidth   = 8
)

// BarChart renders one horizontal bar per tally, scaled to the largest
// count. Rows keep their input order.
func BarChart(tallies []catalog.Tally, width int, barStyle lipgloss.Style) string {
	if len(tallies) == 0 {
		return styles.DimStyle.Render("no data")
	}

	labelWidth, countWidth, maxCount := chartDims(tallies)
	barWidth := width - labelWidth - countWidth - 3
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	for i, t := range tallies {
		if i > 0 {
			b.WriteByte('\n')
		}
		filled := scale(t.Count, maxCount, barWidth)
		b.WriteString(styles.ChartLabelStyle.Render(styles.PadLeft(styles.Truncate(t.Label, labelWidth), labelWidth)))
		b.WriteByte(' ')
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(styles.BarDimStyle.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteByte(' ')
		b.WriteString(styles.ChartCountStyle.Render(styles.PadLeft(fmt.Sprintf("%d", t.Count), countWidth)))
	}
	return b.String()
}

// ProportionBar renders a single segmented bar plus a percentage legend,
// the terminal stand-in for a pie chart.
func ProportionBar(parts []catalog.Tally, width int, partStyles []lipgloss.Style) string {
	total := 0
	for _, p := range parts {
		total += p.Count
	}
	if total == 0 {
		return styles.DimStyle.Render("no data")
	}

	barWidth := width - 2
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var bar strings.Builder
	used := 0
	for i, p := range parts {
		cells := p.Count * barWidth / total
		if i == len(parts)-1 {
			cells = barWidth - used // Last segment absorbs rounding
		}
		used += cells
		bar.WriteString(styleFor(partStyles, i).Render(strings.Repeat("█", cells)))
	}

	var legend []string
	for i, p := range parts {
		pct := float64(p.Count) * 100 / float64(total)
		legend = append(legend, fmt.Sprintf("%s %s (%.1f%%)",
			styleFor(partStyles, i).Render("■"),
			styles.ChartLabelStyle.Render(p.Label),
			pct))
	}

	return bar.String() + "\n" + strings.Join(legend, "   ")
}

// Histogram buckets values into fixed-width ranges and renders them as a
// bar chart. Empty buckets between the min and max stay visible.
func Histogram(values []int, bucketSize, width int, barStyle lipgloss.Style) string {
	if len(values) == 0 || bucketSize <= 0 {
		return styles.DimStyle.Render("no data")
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	loBucket, hiBucket := lo/bucketSize, hi/bucketSize

	counts := make(map[int]int)
	for _, v := range values {
		counts[v/bucketSize]++
	}

	tallies := make([]catalog.Tally, 0, hiBucket-loBucket+1)
	for b := loBucket; b <= hiBucket; b++ {
		tallies = append(tallies, catalog.Tally{
			Label: fmt.Sprintf("%d-%d", b*bucketSize, (b+1)*bucketSize-1),
			Count: counts[b],
		})
	}
	return BarChart(tallies, width, barStyle)
}

// SplitBars renders one row per label with two colored segments, used for
// the per-year movie/show growth view. Rows keep their input order; each
// row's pair is (primary, secondary).
type SplitRow struct {
	Label     string
	Primary   int
	Secondary int
}

// SplitBarChart renders stacked two-part bars scaled to the largest row total
func SplitBarChart(rows []SplitRow, width int, primary, secondary lipgloss.Style) string {
	if len(rows) == 0 {
		return styles.DimStyle.Render("no data")
	}

	labelWidth, countWidth, maxTotal := 0, 0, 0
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
		total := r.Primary + r.Secondary
		if total > maxTotal {
			maxTotal = total
		}
		if w := len(fmt.Sprintf("%d/%d", r.Primary, r.Secondary)); w > countWidth {
			countWidth = w
		}
	}
	if maxTotal == 0 {
		return styles.DimStyle.Render("no data")
	}

	barWidth := width - labelWidth - countWidth - 3
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		p := scale(r.Primary, maxTotal, barWidth)
		s := scale(r.Secondary, maxTotal, barWidth)
		b.WriteString(styles.ChartLabelStyle.Render(styles.PadLeft(r.Label, labelWidth)))
		b.WriteByte(' ')
		b.WriteString(primary.Render(strings.Repeat("█", p)))
		b.WriteString(secondary.Render(strings.Repeat("█", s)))
		b.WriteString(styles.BarDimStyle.Render(strings.Repeat("░", barWidth-p-s)))
		b.WriteByte(' ')
		b.WriteString(styles.ChartCountStyle.Render(styles.PadLeft(fmt.Sprintf("%d/%d", r.Primary, r.Secondary), countWidth)))
	}
	return b.String()
}

// WordCloud renders word frequencies in size-graded styles, wrapped to
// width. Input order is frequency order; the render shuffles nothing.
func WordCloud(words []catalog.Tally, width int) string {
	if len(words) == 0 {
		return styles.DimStyle.Render("no data")
	}

	maxCount := words[0].Count
	var lines []string
	var line strings.Builder
	lineLen := 0

	for _, w := range words {
		rendered := wordStyle(w.Count, maxCount).Render(w.Label)
		wordLen := len([]rune(w.Label)) + 2
		if lineLen+wordLen > width && lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString("  ")
		}
		line.WriteString(rendered)
		lineLen += wordLen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// wordStyle grades a word's prominence by its share of the top count
func wordStyle(count, maxCount int) lipgloss.Style {
	switch {
	case count*4 >= maxCount*3:
		return lipgloss.NewStyle().Foreground(styles.NetflixRed).Bold(true)
	case count*2 >= maxCount:
		return lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	case count*4 >= maxCount:
		return lipgloss.NewStyle().Foreground(styles.White)
	default:
		return lipgloss.NewStyle().Foreground(styles.LightGray)
	}
}

func chartDims(tallies []catalog.Tally) (labelWidth, countWidth, maxCount int) {
	for _, t := range tallies {
		if l := len([]rune(t.Label)); l > labelWidth {
			labelWidth = l
		}
		if t.Count > maxCount {
			maxCount = t.Count
		}
	}
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}
	countWidth = len(fmt.Sprintf("%d", maxCount))
	return labelWidth, countWidth, maxCount
}

// scale maps count onto [0, barWidth], keeping nonzero counts visible
func scale(count, maxCount, barWidth int) int {
	if maxCount == 0 {
		return 0
	}
	filled := count * barWidth / maxCount
	if filled == 0 && count > 0 {
		filled = 1
	}
	return filled
}

func styleFor(s []lipgloss.Style, i int) lipgloss.Style {
	if i < len(s) {
		return s[i]
	}
	return styles.BarDimStyle
}
