package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/config/layer"
	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/logging"
)

// displayFormat resolves the --display flag. Without one, terminals get
// symbols and pipes get full words.
func displayFormat(name string, out io.Writer) (key.Format, error) {
	if name == "" {
		if logging.IsTerminal(out) {
			return key.FormatSymbols, nil
		}
		return key.FormatFull, nil
	}
	f, ok := key.ParseFormat(name)
	if !ok {
		return 0, fmt.Errorf("unknown display format %q (want symbols, debug, full or abbreviation)", name)
	}
	return f, nil
}

func newShowCommand(s *session) *cobra.Command {
	var (
		display string
		origin  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved binding table",
		Long: `Resolve bindings from the defaults, the override file given by --config
and KEYBIND_KEY_<EVENT> variables, then print each event's chords.
With --origin, each row names the default layer, the override file or the
variable that set it.

Display formats:
  symbols       ^c|Q|q
  debug         "Control+c"|"Q"|"q"
  full          Control+c | Q | q
  abbreviation  Ctrl+c | Q | q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			f, err := displayFormat(display, out)
			if err != nil {
				return err
			}
			t, err := s.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderTable(newTheme(out), t, f, origin))
			return nil
		},
	}

	cmd.Flags().StringVarP(&display, "display", "d", "", "display format: symbols, debug, full or abbreviation")
	cmd.Flags().BoolVar(&origin, "origin", false, "show where each binding came from")
	return cmd
}

// renderTable renders entries as a bordered table.
func renderTable(th *theme, t *keymap.Table, f key.Format, withOrigin bool) string {
	headers := []string{"Event", "Chords", "Description"}
	if withOrigin {
		headers = append(headers, "Origin")
	}

	env := loader.NewEnvLoader(loader.DefaultEnvPrefix)
	rows := make([][]string, 0, len(t.Events()))
	for _, e := range t.Entries() {
		chords := e.Set.Display(f)
		if e.Set.IsEmpty() {
			chords = "(disabled)"
		}
		row := []string{e.Name, chords, e.Doc}
		if withOrigin {
			origin := e.Origin
			if e.Source == layer.SourceEnv {
				origin = "$" + env.VarName(e.Name)
			}
			row = append(row, origin)
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Subtle.BorderForeground(th.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return th.Header
			case col == 1:
				return th.Cell.Foreground(th.Highlight.GetForeground())
			default:
				return th.Cell
			}
		}).
		String()
}
