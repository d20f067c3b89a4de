package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hausp/bigcalc/internal/ui"
)

// Dashboard styles, rebuilt from the active ui theme by initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	logTimeStyle       lipgloss.Style
	logExprStyle       lipgloss.Style
	logProgressStyle   lipgloss.Style
	logSuccessStyle    lipgloss.Style
	logErrorStyle      lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	chartBarStyle      lipgloss.Style
	chartEmptyStyle    lipgloss.Style
	footerKeyStyle     lipgloss.Style
	footerDescStyle    lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func fgBold(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	headerStyle = fgBold(t.Accent).Background(t.Bg).Padding(0, 1)

	titleStyle = fgBold(t.Accent)
	versionStyle = fg(t.Dim)
	elapsedStyle = fg(t.Accent)

	logTimeStyle = fg(t.Dim)
	logExprStyle = fg(t.Info)
	logProgressStyle = fg(t.Accent)
	logSuccessStyle = fg(t.Success)
	logErrorStyle = fg(t.Error)

	metricLabelStyle = fg(t.Dim)
	metricValueStyle = fgBold(t.Accent)

	chartBarStyle = fg(t.Accent)
	chartEmptyStyle = fg(t.Dim)
	cpuSparklineStyle = fg(t.Accent)
	memSparklineStyle = fg(t.Warning)

	footerKeyStyle = fgBold(t.Accent)
	footerDescStyle = fg(t.Dim)

	statusRunningStyle = fgBold(t.Success)
	statusPausedStyle = fgBold(t.Warning)
	statusDoneStyle = fgBold(t.Accent)
	statusErrorStyle = fgBold(t.Error)
}
