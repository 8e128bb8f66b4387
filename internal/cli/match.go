package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/key"
)

func newMatchCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match CHORD...",
		Short: "Show which events a chord triggers",
		Long: `Simulate key presses and print every event each one triggers, in
declaration order. Chords are echoed in canonical form.

Examples:
  keybind match ctrl+c        # Control+c: quit, cancel
  keybind match '?' F1 Space`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords := make([]key.Chord, len(args))
			labels := make([]string, len(args))
			for i, arg := range args {
				spec, err := key.NormalizeSpec(arg)
				if err != nil {
					return err
				}
				chords[i] = key.MustParse(spec)
				labels[i] = spec
			}

			t, err := s.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			th := newTheme(out)
			for i, c := range chords {
				events := t.Dispatch(c.Event())
				result := th.Subtle.Render("(no events)")
				if len(events) > 0 {
					result = th.Highlight.Render(strings.Join(events, ", "))
				}
				fmt.Fprintf(out, "%s: %s\n", labels[i], result)
			}
			return nil
		},
	}
	return cmd
}
