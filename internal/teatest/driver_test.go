package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type incMsg struct{}

// counter counts keys and incMsgs; "b" batches two increments, "q" quits
// and "s" schedules a slow command.
type counter struct {
	n     int
	width int
	keys  []string
	quit  bool
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return incMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case incMsg:
		c.n++
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.QuitMsg:
		c.quit = true
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		switch msg.String() {
		case "b":
			inc := func() tea.Msg { return incMsg{} }
			return c, tea.Batch(inc, inc)
		case "q":
			return c, tea.Quit
		case "s":
			return c, func() tea.Msg { time.Sleep(50 * time.Millisecond); return incMsg{} }
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("n=%d", c.n) }

func TestDriver_InitAndBatch(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.Init()
	assert.Equal(t, "n=1", d.View())
	assert.Equal(t, 80, d.Model.(counter).width)

	d.Press("b")
	assert.Equal(t, "n=3", d.View())
}

func TestDriver_NamedKeysAndTyping(t *testing.T) {
	d := New(t, counter{})
	d.Press("enter")
	d.Press("esc")
	d.Press("ctrl+c")
	d.Type("xy")
	assert.Equal(t, []string{"enter", "esc", "ctrl+c", "x", "y"}, d.Model.(counter).keys)
}

func TestDriver_QuitStopsSends(t *testing.T) {
	d := New(t, counter{})
	d.Press("q")
	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(counter).quit)

	d.Press("b")
	assert.Equal(t, "n=0", d.View())
}

func TestDriver_DropsSlowCommands(t *testing.T) {
	d := New(t, counter{})
	d.Press("s")
	assert.Equal(t, 1, d.Dropped)
	assert.Equal(t, "n=0", d.View())
	time.Sleep(60 * time.Millisecond)
}
