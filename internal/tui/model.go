package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/lintbubble/internal/orchestration"
)

// TooSmallMessage replaces the frames when the terminal cannot hold them.
const TooSmallMessage = "terminal size is too small!"

// AnimationConfig controls the frames and their timing.
type AnimationConfig struct {
	// Frames are drawn in order, one per FrameDuration.
	Frames []string
	// Offset is the layout width: frames start at column Offset/2, and a
	// terminal narrower than Offset is too small.
	Offset int
	// FrameDuration is how long each frame stays on screen.
	FrameDuration time.Duration
	// TooSmallPause is how long the too-small message stays before the size
	// is checked again.
	TooSmallPause time.Duration
}

// frameMsg asks the model to move to the next frame.
type frameMsg struct{}

// checkMsg carries a progress event from the check goroutine.
type checkMsg orchestration.CheckEvent

// Model is the bubbletea model of the animation.
//
// The stop signal is polled at the start of every cycle, before the first
// frame is drawn, and again after each too-small pause. The animation never
// ends in the middle of a cycle.
type Model struct {
	cfg    AnimationConfig
	frames [][]string
	lines  int
	stop   *orchestration.StopSignal
	keymap KeyMap
	status StatusModel

	width  int
	height int

	// next is the frame drawn on the next frameMsg; shown is the one on
	// screen, or -1 before the first frame.
	next     int
	shown    int
	tooSmall bool

	stopped     bool
	interrupted bool
}

// NewModel creates the animation model.
func NewModel(cfg AnimationConfig, stop *orchestration.StopSignal) Model {
	if len(cfg.Frames) == 0 {
		cfg.Frames = DefaultFrames()
	}
	frames := make([][]string, len(cfg.Frames))
	lines := 0
	for i, f := range cfg.Frames {
		frames[i] = strings.Split(strings.TrimPrefix(f, "\n"), "\n")
		lines = max(lines, len(frames[i]))
	}
	return Model{
		cfg:    cfg,
		frames: frames,
		lines:  lines,
		stop:   stop,
		keymap: DefaultKeyMap(),
		status: NewStatusModel(),
		shown:  -1,
	}
}

// Init starts the first cycle immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)
		return m, nil

	case checkMsg:
		m.status.Record(orchestration.CheckEvent(msg))
		return m, nil

	case frameMsg:
		return m.advance()
	}
	return m, nil
}

// advance shows the next frame. The stop signal is polled at the start of
// each cycle; the canvas size is checked before every frame, and a frame
// that does not fit is retried after the too-small pause.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.next == 0 && m.stop.IsSet() {
		m.stopped = true
		return m, tea.Quit
	}
	if !m.fits() {
		// Mid-cycle there is nothing left on screen worth finishing.
		if m.stop.IsSet() {
			m.stopped = true
			return m, tea.Quit
		}
		m.tooSmall = true
		return m, tick(m.cfg.TooSmallPause)
	}
	m.tooSmall = false
	m.shown = m.next
	m.next = (m.next + 1) % len(m.frames)
	return m, tick(m.cfg.FrameDuration)
}

// fits reports whether the canvas can hold a frame. An unknown size (no
// WindowSizeMsg yet, or no terminal) is assumed to fit.
func (m Model) fits() bool {
	if m.width == 0 && m.height == 0 {
		return true
	}
	return m.lines <= m.height && m.cfg.Offset <= m.width
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{} })
}

// View renders the current frame, or the too-small message.
func (m Model) View() string {
	if m.stopped || m.interrupted {
		return ""
	}
	if m.tooSmall {
		return warningStyle.Render(TooSmallMessage)
	}
	if m.shown < 0 {
		return ""
	}

	indent := strings.Repeat(" ", m.cfg.Offset/2)
	var b strings.Builder
	for i, line := range m.frames[m.shown] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(frameStyle.Render(line))
	}
	// The status bar only appears when there is a spare line for it.
	if m.height == 0 || m.height > m.lines+1 {
		b.WriteString("\n\n")
		b.WriteString(m.status.View())
	}
	return b.String()
}

// Interrupted reports whether the user asked to abort.
func (m Model) Interrupted() bool { return m.interrupted }
