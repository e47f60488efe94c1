// Package tui is a terminal front-end for the chart editor. Lanes run
// across, the earliest row is at the top, and the mouse drives the same
// press / enter / release gestures as the browser page.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/editor"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/render"
	"github.com/jsphweid/synchro/util"
)

const (
	gutterWidth  = 8
	cellWidth    = 4
	headerHeight = 1
	footerHeight = 2
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"})
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"})
	tapStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	holdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Italic(true)
)

type Options struct {
	SongName string
	Artist   string
	// OutPath is where the write key puts the chart JSON.
	OutPath string
}

type Model struct {
	editor *editor.Editor
	opts   Options
	help   help.Model
	logger *slog.Logger

	width  int
	height int
	// scroll is the number of rows hidden above the view.
	scroll int
	status string
}

func New(e *editor.Editor, opts Options, logger *slog.Logger) *Model {
	return &Model{editor: e, opts: opts, help: help.New(), logger: logger}
}

func Run(e *editor.Editor, opts Options, logger *slog.Logger) error {
	p := tea.NewProgram(New(e, opts, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fault.Wrap(err, fmsg.With("editor exited with an error"))
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) visibleRows() int {
	if m.height == 0 {
		return m.editor.Rows()
	}
	return util.Max(1, m.height-headerHeight-footerHeight)
}

func (m *Model) maxScroll() int {
	return util.Max(0, m.editor.Rows()-m.visibleRows())
}

func (m *Model) scrollBy(delta int) {
	m.scroll = util.Clamp(m.scroll+delta, 0, m.maxScroll())
}

// scrollToEnd shows the latest rows, where a new chart starts.
func (m *Model) scrollToEnd() {
	m.scroll = m.maxScroll()
}

// cellAt maps a screen position to a grid cell.
func (m *Model) cellAt(x, y int) (col, row int, ok bool) {
	line := y - headerHeight
	if line < 0 || line >= m.visibleRows() || x < gutterWidth {
		return 0, 0, false
	}
	col = (x - gutterWidth) / cellWidth
	row = m.editor.Rows() - 1 - (m.scroll + line)
	if col >= m.editor.Columns() || row < 0 {
		return 0, 0, false
	}
	return col, row, true
}

// screenPos is the inverse of cellAt, pointing at the middle of the cell.
func (m *Model) screenPos(col, row int) (x, y int) {
	line := m.editor.Rows() - 1 - row - m.scroll
	return gutterWidth + col*cellWidth + cellWidth/2, line + headerHeight
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToEnd()
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return
	}

	col, row, ok := m.cellAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if ok {
			m.editor.Press(col, row)
		}
	case tea.MouseActionMotion:
		if ok {
			m.editor.Enter(col, row)
		}
	case tea.MouseActionRelease:
		m.editor.Release()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.TapMode):
		m.editor.SetMode(model.TapMode)
	case key.Matches(msg, keys.HoldMode):
		m.editor.SetMode(model.HoldMode)
	case key.Matches(msg, keys.Longer):
		m.resize(m.editor.LengthSeconds() + 1)
	case key.Matches(msg, keys.Shorter):
		m.resize(util.Max(1, m.editor.LengthSeconds()-1))
	case key.Matches(msg, keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(-m.visibleRows())
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(m.visibleRows())
	case key.Matches(msg, keys.Write):
		m.write()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) resize(length float64) {
	dropped := m.editor.NumNotes()
	m.editor.Resize(length)
	m.scrollToEnd()
	m.status = fmt.Sprintf("length %.0fs, %d rows, cleared %d notes", m.editor.LengthSeconds(), m.editor.Rows(), dropped)
}

func (m *Model) write() {
	c := m.editor.Export(m.editor.Metadata(m.opts.SongName, m.opts.Artist))
	if err := writeChart(m.opts.OutPath, c); err != nil {
		m.logger.Error("could not write chart", "path", m.opts.OutPath, "error", err)
		m.status = "write failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("wrote %d tiles to %s", len(c.Tiles), m.opts.OutPath)
}

func writeChart(path string, c model.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fault.Wrap(err, fmsg.With("could not create "+path))
	}
	defer f.Close()
	return chart.Write(f, c)
}

func (m *Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("synchro  tool: %s  length: %.1fs  rows: %d  notes: %d",
		m.editor.Mode(), m.editor.LengthSeconds(), m.editor.Rows(), m.editor.NumNotes())
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')

	frame := m.editor.Frame()
	top := m.editor.Rows() - 1 - m.scroll
	for line := 0; line < m.visibleRows(); line++ {
		row := top - line
		if row < 0 {
			break
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%6.1fs ", float64(m.editor.TimeOf(row))/1000)))
		for col := 0; col < frame.Columns(); col++ {
			b.WriteString(cell(frame.At(row, col)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(statusStyle.Render(m.status))
	b.WriteByte('\n')
	b.WriteString(m.help.View(keys))
	return b.String()
}

func cell(s render.State) string {
	text := " " + string(render.Glyph(s)) + "  "
	switch {
	case s.Hold():
		return holdStyle.Render(text)
	case s.Active():
		return tapStyle.Render(text)
	}
	return emptyStyle.Render(text)
}
