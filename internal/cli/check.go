package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/config/watcher"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
)

func newCheckCommand(s *session) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate an override file",
		Long: `Validate an override file against the known events and the chord
syntax. Environment overrides are not applied.

With --watch the file is checked again after every change until
interrupted. Checking never changes a running application's bindings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			err := s.check(out, path)
			if names := loader.NewEnvLoader(loader.DefaultEnvPrefix).Names(); len(names) > 0 {
				fmt.Fprintf(out, "%s %s set but not applied by check\n",
					newTheme(out).Subtle.Render("note:"), strings.Join(names, ", "))
			}
			if !watch {
				return err
			}
			if err != nil {
				printError(out, err)
			}
			return s.watchAndCheck(cmd, path)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again whenever the file changes")
	return cmd
}

// check loads path over the defaults and reports the overridden events.
func (s *session) check(out io.Writer, path string) error {
	table, err := keymap.Load(s.registry,
		keymap.WithOverrideFile(path),
		keymap.WithLogger(s.log),
	)
	if err != nil {
		return err
	}

	t := newTheme(out)
	overridden := table.Overridden()
	summary := "no events overridden"
	if len(overridden) > 0 {
		summary = fmt.Sprintf("%d overridden: %s", len(overridden), strings.Join(overridden, ", "))
	}
	fmt.Fprintf(out, "%s %s (%s)\n", t.Success.Render("ok"), path, summary)
	for _, name := range overridden {
		set, _ := table.Set(name)
		chords := set.Display(key.FormatFull)
		if set.IsEmpty() {
			chords = "(disabled)"
		}
		defaults := "none"
		if def, ok := s.registry.Lookup(name); ok && len(def.Defaults) > 0 {
			defaults = strings.Join(def.Defaults, " | ")
		}
		fmt.Fprintf(out, "  %s: %s %s\n", name, chords, t.Subtle.Render("(default: "+defaults+")"))
	}
	return nil
}

func (s *session) watchAndCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	w := watcher.New(watcher.WithLogger(s.log))
	if err := w.Watch(path); err != nil {
		return err
	}
	w.OnChange(func(e watcher.Event) {
		s.log.Debug().Str("path", e.Path).Stringer("op", e.Op).Msg("override file changed")
		if e.Op == watcher.OpRemove || e.Op == watcher.OpRename {
			fmt.Fprintf(out, "%s %s\n", newTheme(out).Subtle.Render(e.Op.String()), path)
			return
		}
		if err := s.check(out, path); err != nil {
			printError(out, err)
		}
	})

	ctx := cmd.Context()
	if err := w.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", newTheme(out).Subtle.Render("watching"), strings.Join(w.WatchedFiles(), ", "))
	<-ctx.Done()
	return w.Stop()
}
