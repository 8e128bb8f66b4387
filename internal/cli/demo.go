package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	bubbleskey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/teakey"
	"github.com/dshills/keybind/internal/input/termkey"
	"github.com/dshills/keybind/internal/logging"
)

// quitEvent ends the demo when dispatched.
const quitEvent = "quit"

// helpEvent switches the tea demo between short and full help.
const helpEvent = "toggle_help_widget"

// Demo backends.
const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

func newDemoCommand(s *session) *cobra.Command {
	var (
		backend string
		display string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Press keys and see which events they trigger",
		Long: `Open an interactive screen that dispatches every key press against the
resolved bindings. Any key bound to quit exits. With the tea backend,
keys bound to toggle_help_widget switch between short and full help.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if backend != backendTea && backend != backendTcell {
				return fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendTea, backendTcell)
			}
			f, ok := key.ParseFormat(display)
			if !ok {
				return fmt.Errorf("unknown display format %q", display)
			}
			if !logging.IsTerminal(os.Stdin) || !logging.IsTerminal(os.Stdout) {
				return errors.New("demo needs an interactive terminal")
			}

			t, err := s.load()
			if err != nil {
				return err
			}
			state := newDemoState(t, f)

			s.log.Debug().Str("backend", backend).Msg("starting demo")
			if backend == backendTcell {
				return runTcellDemo(cmd.Context(), state)
			}
			return runTeaDemo(cmd.Context(), state)
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", backendTea, "terminal backend: tea or tcell")
	cmd.Flags().StringVarP(&display, "display", "d", "symbols", "display format for chords")
	return cmd
}

// demoState tracks the last key press and what it dispatched.
type demoState struct {
	table  *keymap.Table
	format key.Format
	last   string
	events []string
}

func newDemoState(t *keymap.Table, f key.Format) *demoState {
	return &demoState{table: t, format: f}
}

// press dispatches ev and reports whether it triggered quit.
func (d *demoState) press(ev key.Event) bool {
	d.last = ev.String()
	d.events = d.table.Dispatch(ev)
	return slices.Contains(d.events, quitEvent)
}

// unknown records a key the backend could not convert.
func (d *demoState) unknown(desc string) {
	d.last = desc + " (unsupported)"
	d.events = nil
}

func (d *demoState) status() string {
	switch {
	case d.last == "":
		return "Press a key."
	case len(d.events) == 0:
		return fmt.Sprintf("%s → no events", d.last)
	default:
		return fmt.Sprintf("%s → %s", d.last, strings.Join(d.events, ", "))
	}
}

// bindingLines lists each event with its chords, marking the events the
// last key press dispatched.
func (d *demoState) bindingLines() []string {
	entries := d.table.Entries()
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		mark := " "
		if slices.Contains(d.events, e.Name) {
			mark = "●"
		}
		lines[i] = fmt.Sprintf("%s %-*s  %s", mark, width, e.Name, e.Set.Display(d.format))
	}
	return lines
}

// demoKeyMap adapts the binding table to the bubbles help view.
type demoKeyMap struct {
	short []bubbleskey.Binding
	all   []bubbleskey.Binding
}

func newDemoKeyMap(t *keymap.Table, f key.Format) demoKeyMap {
	var km demoKeyMap
	for _, e := range t.Entries() {
		b := teakey.Binding(e.Set, e.Name, f)
		km.all = append(km.all, b)
		if e.Name == helpEvent || e.Name == quitEvent {
			km.short = append(km.short, b)
		}
	}
	return km
}

func (k demoKeyMap) ShortHelp() []bubbleskey.Binding {
	return k.short
}

func (k demoKeyMap) FullHelp() [][]bubbleskey.Binding {
	var columns [][]bubbleskey.Binding
	for column := range slices.Chunk(k.all, 4) {
		columns = append(columns, column)
	}
	return columns
}

// demoModel is the bubbletea model of the demo.
type demoModel struct {
	state *demoState
	theme *theme
	keys  demoKeyMap
	help  help.Model
}

func newDemoModel(state *demoState, th *theme) demoModel {
	return demoModel{
		state: state,
		theme: th,
		keys:  newDemoKeyMap(state.table, state.format),
		help:  help.New(),
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		ev, ok := teakey.FromKeyMsg(msg)
		if !ok {
			m.state.unknown(msg.String())
			return m, nil
		}
		if m.state.press(ev) {
			return m, tea.Quit
		}
		if slices.Contains(m.state.events, helpEvent) {
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m demoModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("keybind demo"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Highlight.Render(m.state.status()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func runTeaDemo(ctx context.Context, state *demoState) error {
	m := newDemoModel(state, newTheme(os.Stdout))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runTcellDemo(ctx context.Context, state *demoState) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	title := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorCornflowerBlue)
	status := tcell.StyleDefault.Foreground(tcell.ColorGold)

	for {
		screen.Clear()
		drawText(screen, 0, 0, title, "keybind demo")
		drawText(screen, 0, 2, status, state.status())
		for i, line := range state.bindingLines() {
			drawText(screen, 0, 4+i, tcell.StyleDefault, line)
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			converted, ok := termkey.FromEvent(ev)
			if !ok {
				state.unknown(ev.Name())
				continue
			}
			if state.press(converted) {
				return nil
			}
		}
	}
}

// drawText writes s at (x, y), advancing by each rune's cell width.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
