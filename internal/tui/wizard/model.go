package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/vstepper/internal/config"
	"github.com/mark3labs/vstepper/internal/hooks"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/state"
	"github.com/mark3labs/vstepper/internal/stepper"
	"github.com/mark3labs/vstepper/internal/tui/theme"
)

// Rows reserved around the stepper: title and rule above, hints below.
const (
	headerHeight = 2
	footerHeight = 1
)

// StepResult is the outcome of one step.
type StepResult struct {
	Title    string
	Value    string
	Complete bool
	Error    string
}

// Result holds what the wizard collected.
type Result struct {
	// Finished is true when the last step was completed, false when the
	// user quit early.
	Finished bool
	Steps    []StepResult
}

// hookDoneMsg reports that a batch of hooks ran.
type hookDoneMsg struct {
	output string
	err    error
	final  bool
}

type valueSetter interface {
	SetValue(v string)
}

// Option configures a Model.
type Option func(*Model)

// WithStore persists progress to store under the wizard's key.
func WithStore(store state.Store) Option {
	return func(m *Model) { m.store = store }
}

// WithHooks runs hooks from cfg in workDir.
func WithHooks(cfg *hooks.Config, workDir string) Option {
	return func(m *Model) {
		m.hooks = cfg
		m.workDir = workDir
	}
}

// WithContext sets the context used for storage and hooks.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithClock overrides the time source used for snapshots.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model is the Bubble Tea model hosting a stepper. It owns the step
// contents, relayouts when the stepper asks and routes keys and clicks.
type Model struct {
	cfg      *config.Config
	keys     KeyMap
	stepper  *stepper.Stepper
	contents []Content
	required map[string]bool

	measurement *stepper.Measurement
	layoutDirty bool
	width       int
	height      int

	// focus is the step the keyboard marker sits on; active is the step
	// whose content has input focus, or -1.
	focus  int
	active int

	store    state.Store
	stateKey string
	hooks    *hooks.Config
	workDir  string
	ctx      context.Context
	now      func() time.Time

	pending  []tea.Cmd
	unsaved  bool
	status   string
	finished bool
	quitting bool
}

// New builds the wizard for cfg, restoring saved progress from the store
// when one is configured.
func New(cfg *config.Config, opts ...Option) (*Model, error) {
	if len(cfg.Steps) == 0 {
		return nil, errors.New("wizard has no steps")
	}

	m := &Model{
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		required:    make(map[string]bool),
		layoutDirty: true,
		active:      -1,
		stateKey:    state.Key(cfg.Title),
		ctx:         context.Background(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	children := make([]stepper.Child, 0, len(cfg.Steps))
	for i, sc := range cfg.Steps {
		content, err := NewContent(i, sc)
		if err != nil {
			return nil, err
		}
		m.contents = append(m.contents, content)
		m.required[content.ID()] = sc.Required
		children = append(children, stepper.Child{
			Content:  content,
			Title:    sc.Title,
			Summary:  sc.Summary,
			Optional: sc.Optional,
		})
	}

	m.stepper = stepper.New(NewCommon(cfg),
		stepper.WithHost(m),
		stepper.WithAutoExpandFirst(cfg.AutoExpandFirst),
		stepper.WithValidator(stepper.ValidatorFunc(m.validate)),
		stepper.WithOnStepCompleted(m.stepCompleted),
		stepper.WithOnFinish(m.wizardFinished),
	)

	var saved []stepper.State
	if m.store != nil {
		if snap := state.Restore(m.ctx, m.store, m.stateKey, m.titles()); snap != nil {
			saved = snap.Steps
			for i, c := range m.contents {
				if v, ok := c.(valueSetter); ok && snap.Value(i) != "" {
					v.SetValue(snap.Value(i))
				}
			}
		}
	}
	if err := m.stepper.Attach(children, saved); err != nil {
		return nil, fmt.Errorf("attach steps: %w", err)
	}

	if i, ok := m.stepper.Expanded(); ok {
		m.focus = i
	}
	m.pending = append(m.pending, m.syncFocus())
	return m, nil
}

func (m *Model) titles() []string {
	titles := make([]string, len(m.cfg.Steps))
	for i, sc := range m.cfg.Steps {
		titles[i] = sc.Title
	}
	return titles
}

// RequestLayout implements stepper.Host.
func (m *Model) RequestLayout() { m.layoutDirty = true }

// Invalidate implements stepper.Host. Subtitles are captured at measure
// time, so a redraw needs a fresh measurement too.
func (m *Model) Invalidate() { m.layoutDirty = true }

func (m *Model) validate(content stepper.Widget, optional bool) stepper.Result {
	if !m.required[content.ID()] {
		return stepper.ValidCompleteResult
	}
	title := ""
	for _, step := range m.stepper.Steps() {
		if step.Content() == content {
			title = step.Title()
		}
	}
	return stepper.RequireValue(title+" is required").Validate(content, optional)
}

func (m *Model) stepCompleted(i int, r stepper.Result) {
	content := m.contents[i]
	logger.Info("Step %d (%s) completed: %s", i+1, m.cfg.Steps[i].Title, r.Kind())

	if summary := content.Summary(); summary != "" {
		m.stepper.SetStepSummary(content.ID(), summary)
	}
	m.unsaved = true

	if m.hooks != nil {
		vars := m.hookVars(i)
		m.pending = append(m.pending, m.runHooks(m.hooks.Hooks.OnStepComplete, vars, false))
	}
}

func (m *Model) wizardFinished() {
	logger.Info("Wizard %q finished", m.cfg.Title)
	m.finished = true
	m.unsaved = true

	var finish []*hooks.HookConfig
	if m.hooks != nil {
		finish = m.hooks.Hooks.OnFinish
	}
	if len(finish) == 0 {
		m.pending = append(m.pending, tea.Quit)
		return
	}
	m.status = "Running finish hooks…"
	m.pending = append(m.pending, m.runHooks(finish, hooks.Variables{Wizard: m.cfg.Title}, true))
}

func (m *Model) hookVars(i int) hooks.Variables {
	step := m.stepper.Steps()[i]
	return hooks.Variables{
		Wizard:  m.cfg.Title,
		Step:    i + 1,
		Title:   step.Title(),
		Summary: step.Summary(),
	}
}

// runHooks runs hs off the update loop and reports back with hookDoneMsg.
func (m *Model) runHooks(hs []*hooks.HookConfig, vars hooks.Variables, final bool) tea.Cmd {
	if len(hs) == 0 {
		return nil
	}
	ctx, workDir := m.ctx, m.workDir
	return func() tea.Msg {
		out, err := hooks.ExecuteAll(ctx, hs, workDir, vars)
		return hookDoneMsg{output: out, err: err, final: final}
	}
}

// save persists the current progress. Failures are logged; the wizard
// keeps running.
func (m *Model) save() {
	if m.store == nil {
		return
	}
	snap := &state.Snapshot{
		Wizard:  m.cfg.Title,
		Titles:  m.titles(),
		Steps:   m.stepper.SaveState(),
		Values:  m.values(),
		SavedAt: m.now(),
	}
	if err := m.store.Save(m.ctx, m.stateKey, snap); err != nil {
		logger.Warn("Failed to save state %q: %v", m.stateKey, err)
	}
	m.unsaved = false
}

func (m *Model) values() []string {
	values := make([]string, len(m.contents))
	for i, c := range m.contents {
		if v, ok := c.(stepper.Valuer); ok {
			values[i] = v.Value()
		}
	}
	return values
}

// Init returns the focus command of the initially expanded step.
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// flush drains commands queued by stepper callbacks.
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutDirty = true

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	case tea.MouseClickMsg:
		m.handleClick(msg)

	case NotesEditedMsg:
		for _, c := range m.contents {
			c.Update(msg)
		}
		m.layoutDirty = true

	case hookDoneMsg:
		cmd = m.handleHookDone(msg)

	default:
		if m.active >= 0 {
			cmd = m.contents[m.active].Update(msg)
		}
	}

	m.pending = append(m.pending, cmd, m.syncFocus())
	if m.unsaved {
		m.save()
	}
	m.relayout()
	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Toggle):
		m.stepper.Tap(m.focus)
	case key.Matches(msg, m.keys.Continue):
		if i, ok := m.stepper.Expanded(); ok {
			m.stepper.AttemptStepCompletion(i)
		}
	case key.Matches(msg, m.keys.Select):
		if i, ok := m.stepper.Expanded(); ok && i == m.focus {
			m.stepper.AttemptStepCompletion(i)
		} else {
			m.stepper.Tap(m.focus)
		}
	default:
		if m.active >= 0 {
			return m.contents[m.active].Update(msg)
		}
	}
	return nil
}

func (m *Model) moveFocus(delta int) {
	m.focus = min(max(m.focus+delta, 0), m.stepper.Len()-1)
}

func (m *Model) handleClick(msg tea.MouseClickMsg) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return
	}
	if hit := m.stepper.HitTest(mouse.X, mouse.Y); hit.Kind != stepper.HitNone {
		m.focus = hit.Step
	}
	m.stepper.HandleClick(mouse.X, mouse.Y)
}

func (m *Model) handleHookDone(msg hookDoneMsg) tea.Cmd {
	if out := strings.TrimSpace(msg.output); out != "" {
		logger.Info("Hook output:\n%s", out)
		lines := strings.Split(out, "\n")
		m.status = lines[len(lines)-1]
	}
	if msg.err != nil {
		logger.Error("Hook failed: %v", msg.err)
		m.status = msg.err.Error()
	}
	if msg.final {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// syncFocus moves input focus to the expanded step's content.
func (m *Model) syncFocus() tea.Cmd {
	expanded, ok := m.stepper.Expanded()
	if !ok {
		expanded = -1
	}
	if expanded == m.active {
		return nil
	}
	if m.active >= 0 {
		m.contents[m.active].Blur()
	}
	m.active = expanded
	if expanded < 0 {
		return nil
	}
	m.focus = expanded
	return m.contents[expanded].Focus()
}

func (m *Model) quit() tea.Cmd {
	m.unsaved = true
	m.quitting = true
	return tea.Quit
}

// relayout measures and positions the stepper if anything changed since
// the last layout.
func (m *Model) relayout() {
	if !m.layoutDirty || m.width <= 0 || m.height <= 0 {
		return
	}
	available := max(m.height-headerHeight-footerHeight, 0)
	m.measurement = m.stepper.Measure(stepper.UpTo(m.width), stepper.UpTo(available))
	m.stepper.Layout(m.measurement, uv.Position{X: 0, Y: headerHeight})
	m.layoutDirty = false
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	if m.quitting {
		view.Content = lipgloss.NewLayer("")
		return view
	}
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	m.relayout()
	canvas := uv.NewScreenBuffer(m.width, m.height)
	m.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// Draw paints the header, the stepper and the hint bar into area.
func (m *Model) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	s := theme.Current().S()

	title := s.HeaderTitle.Render(m.cfg.Title)
	uv.NewStyledString(title).Draw(scr, uv.Rect(area.Min.X+1, area.Min.Y, area.Dx()-1, 1))
	rule := s.HeaderRule.Render(strings.Repeat("─", area.Dx()))
	uv.NewStyledString(rule).Draw(scr, uv.Rect(area.Min.X, area.Min.Y+1, area.Dx(), 1))

	if m.measurement != nil {
		m.stepper.Draw(scr, m.measurement)
		if !m.finished {
			origin := m.stepper.Steps()[m.focus].Origin()
			if origin.X > 0 {
				marker := s.FocusMarker.Render("›")
				uv.NewStyledString(marker).Draw(scr, uv.Rect(origin.X-1, origin.Y, 1, 1))
			}
		}
	}

	footer := m.footer()
	uv.NewStyledString(footer).Draw(scr, uv.Rect(area.Min.X+1, area.Max.Y-1, area.Dx()-1, 1))
}

func (m *Model) footer() string {
	if m.finished {
		msg := "✓ All steps complete"
		if m.status != "" {
			msg += "  " + m.status
		}
		return theme.Current().S().Finished.Render(msg)
	}

	bindings := m.keys.ShortHelp()
	if m.active >= 0 {
		bindings = append(bindings, m.contents[m.active].Bindings()...)
	}
	hints := renderBindings(bindings...)
	if m.status != "" {
		hints += "  " + theme.Current().S().HintDesc.Render(m.status)
	}
	return hints
}

// Finished reports whether the last step was completed.
func (m *Model) Finished() bool { return m.finished }

// Stepper returns the hosted stepper.
func (m *Model) Stepper() *stepper.Stepper { return m.stepper }

// Focus returns the step under the keyboard marker.
func (m *Model) Focus() int { return m.focus }

// Result collects the value and status of every step.
func (m *Model) Result() *Result {
	values := m.values()
	res := &Result{Finished: m.finished}
	for i, step := range m.stepper.Steps() {
		res.Steps = append(res.Steps, StepResult{
			Title:    step.Title(),
			Value:    values[i],
			Complete: step.IsComplete(),
			Error:    step.Error(),
		})
	}
	return res
}
