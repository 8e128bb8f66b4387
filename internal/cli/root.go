// Package cli provides the cobra commands of the keybind tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/logging"
)

// EnvPrefix is the prefix of variables configuring the tool itself.
// Binding overrides use loader.DefaultEnvPrefix.
const EnvPrefix = "KEYBIND"

// BuildInfo describes the running binary (set via ldflags).
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// session is the state shared by all commands of one invocation.
type session struct {
	v        *viper.Viper
	log      zerolog.Logger
	registry *keymap.Registry
}

// NewRootCommand builds the keybind command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	s := &session{
		v:        viper.New(),
		log:      zerolog.Nop(),
		registry: keymap.DefaultRegistry(),
	}

	root := &cobra.Command{
		Use:   "keybind",
		Short: "Inspect and validate terminal key bindings",
		Long: `keybind resolves the key binding table of a terminal application.

Bindings start from built-in defaults. An override file (TOML or YAML) and
KEYBIND_KEY_<EVENT> environment variables may replace the chords of any
event; an empty list disables it.

Examples:
  keybind example > keys.toml       # Start an override file
  keybind check keys.toml           # Validate it
  keybind show -c keys.toml         # Show the resolved table
  keybind match Control+c           # Which events does Ctrl+C trigger?`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := logging.FromStrings(s.v.GetString("log-level"), s.v.GetString("log-format"))
			if err != nil {
				return err
			}
			s.log = logging.New(cfg, cmd.ErrOrStderr())
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("keybind {{.Version}}\nCommit: %s\nBuilt: %s\n", info.Commit, info.Date))

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "override file (TOML or YAML) [$KEYBIND_CONFIG]")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error [$KEYBIND_LOG_LEVEL]")
	flags.String("log-format", "", "log format: console or json [$KEYBIND_LOG_FORMAT]")

	s.v.SetEnvPrefix(EnvPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	for _, name := range []string{"config", "log-level", "log-format"} {
		_ = s.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newExampleCommand(s),
		newExportCommand(s),
		newCheckCommand(s),
		newShowCommand(s),
		newMatchCommand(s),
		newDemoCommand(s),
	)

	return root
}

// Execute runs the keybind command line and returns the exit code.
func Execute(info BuildInfo, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(info)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	theme := newTheme(w)
	fmt.Fprintf(w, "%s %v\n", theme.Error.Render("Error:"), err)

	var ferr *keymap.FormatError
	if errors.As(err, &ferr) && ferr.Event != "" {
		fmt.Fprintf(w, "%s run 'keybind example' to see every event and its default chords\n", theme.Subtle.Render("hint:"))
	}
}

// configPath returns the override file named by --config or $KEYBIND_CONFIG.
func (s *session) configPath() string {
	return s.v.GetString("config")
}

// load initializes bindings from the defaults, the override file and
// KEYBIND_KEY_ variables.
func (s *session) load() (*keymap.Table, error) {
	b := keymap.NewBindings(s.registry,
		keymap.WithEnv(loader.DefaultEnvPrefix),
		keymap.WithLogger(s.log),
	)
	if err := b.InitAndLoad(s.configPath()); err != nil {
		return nil, err
	}
	return b.Table()
}
