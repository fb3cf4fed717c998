// internal/browse/browse.go

// Package browse shows a report table in an interactive terminal view.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/benchtab/internal/report"
)

const (
	// maxColumnWidth caps a column so wide eval_raw cells do not push the
	// remaining columns off screen. The detail pane shows the full value.
	maxColumnWidth = 40
	// chromeHeight is the number of lines used by the title, border and help.
	chromeHeight   = 6
	minTableHeight = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	frameStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	detailStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// model is the Bubble Tea model for browsing one report table.
type model struct {
	// Title shown above the table, usually the report mode.
	title string
	// Column names of the report, in order.
	columns []string
	// Bubble Tea table model holding the rows.
	table table.Model
	// Whether the detail pane for the selected row is visible.
	showDetail bool
	// Current width and height of the terminal.
	width, height int
}

// newModel builds the browser model for tbl.
func newModel(tbl *report.Table, title string) *model {
	rows := tbl.Strings()

	cols := make([]table.Column, len(tbl.Columns))
	for i, name := range tbl.Columns {
		w := lipgloss.Width(name)
		for _, r := range rows {
			if cw := lipgloss.Width(r[i]); cw > w {
				w = cw
			}
		}
		cols[i] = table.Column{Title: name, Width: min(w, maxColumnWidth)}
	}

	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(trows), minTableHeight), 20)),
		table.WithStyles(styles),
	)

	return &model{
		title:   title,
		columns: append([]string(nil), tbl.Columns...),
		table:   t,
	}
}

// Init implements tea.Model. The browser needs no startup command.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes. Navigation keys are
// delegated to the embedded table.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - chromeHeight
		if m.showDetail {
			h -= len(m.columns) + 2
		}
		m.table.SetHeight(max(h, minTableHeight))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, the table, an optional detail pane and the help line.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString(fmt.Sprintf("  %d rows\n", len(m.table.Rows())))
	b.WriteString(frameStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.showDetail {
		b.WriteString(detailStyle.Render(m.detail()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(
		keyStyle.Render("↑/↓") + " move  " +
			keyStyle.Render("enter") + " details  " +
			keyStyle.Render("q") + " quit"))
	return b.String()
}

// detail lists every cell of the selected row as "column: value".
func (m *model) detail() string {
	row := m.table.SelectedRow()
	if row == nil {
		return "no row selected"
	}
	lines := make([]string, len(m.columns))
	for i, name := range m.columns {
		var v string
		if i < len(row) {
			v = row[i]
		}
		lines[i] = name + ": " + v
	}
	return strings.Join(lines, "\n")
}

// Run starts the browser for tbl in the terminal's alternate screen and
// blocks until the user quits.
func Run(tbl *report.Table, title string) error {
	p := tea.NewProgram(newModel(tbl, title), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
