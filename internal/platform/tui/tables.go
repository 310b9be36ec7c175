package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lost-n-found/internal/game"
	"github.com/vovakirdan/lost-n-found/internal/storage"
)

// staticTable builds an unfocused table sized to show every row.
func staticTable(columns []table.Column, rows []table.Row) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)
}

// RunsTable builds a static table of recorded runs, best first.
func RunsTable(runs []storage.RunRecord) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Level", Width: 5},
		{Title: "Won", Width: 4},
		{Title: "From", Width: 4},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.LevelReached),
			strconv.Itoa(r.RoundsWon),
			strconv.Itoa(r.StartLevel),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	return staticTable(columns, rows)
}

// CurveTable lists round time, board size and visible cells for levels
// 1 through maxLevel.
func CurveTable(c game.Curve, maxLevel int) table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Board", Width: 7},
		{Title: "Visible", Width: 7},
	}

	if maxLevel < 1 {
		maxLevel = 1
	}
	rows := make([]table.Row, 0, maxLevel)
	for level := 1; level <= maxLevel; level++ {
		w, h := c.GridSize(level)
		rows = append(rows, table.Row{
			strconv.Itoa(level),
			fmt.Sprintf("%.0fs", c.Duration(level).Seconds()),
			fmt.Sprintf("%dx%d", w, h),
			strconv.Itoa(c.Capacity(level)),
		})
	}
	return staticTable(columns, rows)
}

// formatDuration renders a play time as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
