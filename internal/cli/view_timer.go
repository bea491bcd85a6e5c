package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// timerTickMsg asks the view to re-read the clock.
type timerTickMsg struct{}

func everySecond() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return timerTickMsg{} })
}

type timerKeyMap struct {
	Pause  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause/resume")),
		Cancel: key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c/esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Cancel, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// timerModel drives a rest timer.Timer from a once-a-second tick and key
// presses. It rings the bell and quits when the countdown finishes.
type timerModel struct {
	timer *timer.Timer
	now   func() time.Time
	// tick schedules the next timerTickMsg. Tests swap it for one that
	// schedules nothing and send ticks themselves.
	tick func() tea.Cmd
	bell io.Writer

	keys timerKeyMap
	help help.Model
	bar  progressbar.Model

	at        time.Time
	cancelled bool
}

func newTimerModel(d time.Duration, now func() time.Time, bell io.Writer) (*timerModel, error) {
	t, err := timer.New(d)
	if err != nil {
		return nil, err
	}
	return &timerModel{
		timer: t,
		now:   now,
		tick:  everySecond,
		bell:  bell,
		keys:  defaultTimerKeys(),
		help:  help.New(),
		bar: progressbar.New(
			progressbar.WithSolidFill(string(formatter.ColorGreen)),
			progressbar.WithoutPercentage(),
			progressbar.WithWidth(40),
		),
	}, nil
}

func (m *timerModel) Init() tea.Cmd {
	m.at = m.now()
	if err := m.timer.Start(m.at); err != nil {
		return tea.Quit
	}
	return m.tick()
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.at = m.now()
		if m.timer.Tick(m.at) == timer.Finished {
			return m, m.finish()
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.at = m.now()
			if err := m.timer.Toggle(m.at); err != nil {
				return m, nil
			}
			if m.timer.State() == timer.Finished {
				return m, m.finish()
			}
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
			_ = m.timer.Cancel()
			m.cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), 60)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *timerModel) finish() tea.Cmd {
	if m.bell != nil {
		fmt.Fprint(m.bell, "\a")
	}
	return tea.Quit
}

func (m *timerModel) View() string {
	if m.cancelled {
		return formatter.Dim("Rest timer cancelled.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("REST") + "  " + formatter.Dim(timer.FormatClock(m.timer.Duration())) + "\n\n")

	clock := formatter.Bold(timer.FormatClock(m.timer.Remaining(m.at)))
	switch m.timer.State() {
	case timer.Paused:
		clock += "  " + formatter.StyleYellow.Render("paused")
	case timer.Finished:
		clock += "  " + formatter.StyleGreen.Render("Rest over. Back to work!")
	}
	b.WriteString("  " + clock + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(m.timer.Fraction(m.at)) + "\n\n")
	if m.timer.State() != timer.Finished {
		b.WriteString("  " + m.help.View(m.keys) + "\n")
	}
	return b.String()
}
