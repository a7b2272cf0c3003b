package fire

import (
	"context"
	"errors"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultTick = 30 * time.Millisecond

// Settings tunes the effect. Zero values fall back to the defaults.
type Settings struct {
	FlameBase    int
	SparkDivisor int
	Tick         time.Duration
	Theme        Theme
	Seed         int64
}

func DefaultSettings() Settings {
	return Settings{
		FlameBase:    DefaultFlameBase,
		SparkDivisor: DefaultSparkDivisor,
		Tick:         DefaultTick,
		Theme:        ThemeClassic,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.FlameBase <= 0 {
		s.FlameBase = d.FlameBase
	}
	if s.SparkDivisor <= 0 {
		s.SparkDivisor = d.SparkDivisor
	}
	if s.Tick <= 0 {
		s.Tick = d.Tick
	}
	if s.Theme.Name == "" {
		s.Theme = d.Theme
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	return s
}

type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

type TickMsg time.Time

// Model drives the fire through bubbletea. The buffer is sized from the
// first window size message; later resizes start a fresh grid.
type Model struct {
	settings Settings
	rng      *rand.Rand
	buf      *Buffer
	styles   [5]lipgloss.Style
	state    State
	frames   int
}

func NewModel(s Settings) Model {
	s = s.withDefaults()
	return Model{
		settings: s,
		rng:      rand.New(rand.NewSource(s.Seed)),
		styles:   s.Theme.Styles(),
		state:    StateRunning,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.settings.Tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateTerminated {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.state = StateTerminated
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if m.buf == nil || m.buf.Width() != msg.Width || m.buf.Height() != msg.Height {
			buf, err := NewBuffer(msg.Width, msg.Height)
			if err != nil {
				return m, nil
			}
			m.buf = buf
		}
	case TickMsg:
		if m.buf != nil {
			m.buf.Step(m.rng, m.settings.FlameBase, m.settings.SparkDivisor)
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.state == StateTerminated || m.buf == nil {
		return ""
	}
	return m.buf.Render(m.styles)
}

func (m Model) State() State    { return m.state }
func (m Model) Frames() int     { return m.frames }
func (m Model) Buffer() *Buffer { return m.buf }

// Run plays the fire on the alternate screen until a key is pressed.
// bubbletea owns raw mode and cursor visibility and restores both on
// every exit path, panics and signals included.
func Run(ctx context.Context, s Settings) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return exitError(ctx, err)
}

// exitError decides which program exits are failures. Interrupts and a kill
// caused by ctx being cancelled are normal; a recovered panic never is.
func exitError(ctx context.Context, err error) error {
	switch {
	case err == nil, errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return err
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return err
}
