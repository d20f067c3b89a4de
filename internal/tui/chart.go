package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hausp/bigcalc/internal/format"
)

// sparklineWidth is the horizontal space reserved for sparkline labels,
// value readouts and panel borders.
const sparklineWidth = 17

// ChartModel renders the evaluation progress bar plus CPU and memory
// sparklines sampled from the host system.
type ChartModel struct {
	averageProgress float64
	eta             time.Duration
	cpuHistory      *RingBuffer
	memHistory      *RingBuffer
	width           int
	height          int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		cpuHistory: NewRingBuffer(60),
		memHistory: NewRingBuffer(60),
	}
}

// SetSize updates dimensions and resizes the sparkline buffers so one
// sample maps to one character column.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	bufCap := w - sparklineWidth
	if bufCap < 1 {
		bufCap = 1
	}
	c.cpuHistory.Resize(bufCap)
	c.memHistory.Resize(bufCap)
}

// AddDataPoint records the latest progress update.
func (c *ChartModel) AddDataPoint(value, averageProgress float64, eta time.Duration) {
	_ = value
	c.averageProgress = averageProgress
	c.eta = eta
}

// UpdateSysStats appends CPU and memory utilization samples (percent).
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// Reset clears progress and system history for a new evaluation.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

// renderProgressBar renders a block progress bar with a percentage readout.
// Returns "" when the panel is too narrow to draw one.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 14
	if barWidth < 1 {
		return ""
	}

	filled := int(c.averageProgress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf(" %s %5.1f%%", bar, c.averageProgress*100)
}

// renderSparklineRow renders one labeled sparkline with its latest value.
func (c ChartModel) renderSparklineRow(label string, history *RingBuffer, style lipgloss.Style) string {
	spark := RenderSparkline(history.Slice())
	return fmt.Sprintf(" %s %s %5.1f%%",
		metricLabelStyle.Render(label),
		style.Render(spark),
		history.Last())
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var rows strings.Builder

	rows.WriteString(" " + titleStyle.Render("Progress Chart"))
	rows.WriteString("\n")
	rows.WriteString(c.renderProgressBar())
	rows.WriteString("\n ")
	rows.WriteString(metricLabelStyle.Render("ETA: "))
	rows.WriteString(metricValueStyle.Render(format.FormatETA(c.eta)))

	if c.height >= 10 {
		rows.WriteString("\n")
		rows.WriteString(c.renderSparklineRow("CPU", c.cpuHistory, cpuSparklineStyle))
		rows.WriteString("\n")
		rows.WriteString(c.renderSparklineRow("MEM", c.memHistory, memSparklineStyle))
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(rows.String())
}
