package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/keymap"
)

func parseSyntax(s string) (keymap.Syntax, error) {
	switch strings.ToLower(s) {
	case "toml", "":
		return keymap.SyntaxTOML, nil
	case "yaml", "yml":
		return keymap.SyntaxYAML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want toml or yaml)", s)
	}
}

func newExampleCommand(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the default binding template",
		Long: `Print an override document listing every event with its description
and default chords. The output is a valid override file that changes
nothing until edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			syntax, err := parseSyntax(format)
			if err != nil {
				return err
			}
			text, err := keymap.Example(s.registry, syntax)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "template syntax: toml or yaml")
	return cmd
}

func newExportCommand(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the default binding template to a file",
		Long: `Write the default binding template to FILE. The syntax follows the
extension: .yaml and .yml produce YAML, anything else TOML.

Examples:
  keybind export ~/.config/keybind/keys.toml
  keybind export --force keys.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := keymap.ExportExample(s.registry, path); err != nil {
				return err
			}
			s.log.Info().Str("path", path).Str("syntax", keymap.SyntaxForPath(path).String()).Msg("template exported")

			t := newTheme(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Success.Render("wrote"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
