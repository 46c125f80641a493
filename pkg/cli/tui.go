package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	doneStyle   = lipgloss.NewStyle().Margin(1, 2).Foreground(lipgloss.Color("201"))
	checkMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
)

// progressModel renders a spinner and progress bar while the batch loop feeds
// per-file status lines through done.
type progressModel struct {
	done  chan string
	nTodo int
	nDone int

	finished bool
	width    int
	spinner  spinner.Model
	progress progress.Model
}

type fileDone struct {
	msg string
}

func newProgressModel(done chan string, nTodo int) progressModel {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	return progressModel{
		done:     done,
		nTodo:    nTodo,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m progressModel) waitForFile() tea.Msg {
	return fileDone{<-m.done}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForFile)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.FrameMsg:
		next, cmd := m.progress.Update(msg)
		if next, ok := next.(progress.Model); ok {
			m.progress = next
		}
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case fileDone:
		m.nDone++
		if m.nDone >= m.nTodo {
			m.finished = true
			return m, tea.Sequence(tea.Printf("%s %s", checkMark, statusStyle.Render(msg.msg)), tea.Quit)
		}
		return m, tea.Batch(
			m.progress.SetPercent(float64(m.nDone)/float64(m.nTodo)),
			tea.Printf("%s %s", checkMark, statusStyle.Render(msg.msg)),
			m.waitForFile,
		)
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return doneStyle.Render(fmt.Sprintf("Done! Processed %d images.\n", m.nDone))
	}
	spin := m.spinner.View() + " "
	prog := m.progress.View()
	gap := m.width - lipgloss.Width(spin+prog) - lipgloss.Width("Filtering ")
	if gap < 0 {
		gap = 0
	}
	return spin + "Filtering " + strings.Repeat(" ", gap) + prog
}
