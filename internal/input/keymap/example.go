package keymap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Syntax selects the document format of an example config.
type Syntax uint8

const (
	// SyntaxTOML renders a TOML document.
	SyntaxTOML Syntax = iota
	// SyntaxYAML renders a YAML document.
	SyntaxYAML
)

// String returns the syntax name.
func (s Syntax) String() string {
	if s == SyntaxYAML {
		return "yaml"
	}
	return "toml"
}

// SyntaxForPath picks YAML for .yaml and .yml files and TOML otherwise.
func SyntaxForPath(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	default:
		return SyntaxTOML
	}
}

const exampleHeader = `Key bindings. Each event takes a chord or a list of chords.
Delete an entry to keep its default; set it to [] to disable the event.
Chords are "Key" or "Modifier+Key", e.g. "q", "F2", "Control+c".`

// Example renders every event with its declared default chords and doc
// comment. Defaults are written as declared, before any override.
func Example(reg *Registry, syntax Syntax) (string, error) {
	switch syntax {
	case SyntaxTOML:
		return exampleTOML(reg)
	case SyntaxYAML:
		return exampleYAML(reg)
	default:
		return "", fmt.Errorf("unsupported example syntax %d", syntax)
	}
}

// ExportExample writes the example config to path, choosing the syntax
// from the file extension.
func ExportExample(reg *Registry, path string) error {
	text, err := Example(reg, SyntaxForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing example config %s: %w", path, err)
	}
	return nil
}

func exampleTOML(reg *Registry) (string, error) {
	var b strings.Builder
	writeComment(&b, exampleHeader)

	for _, def := range reg.Definitions() {
		b.WriteString("\n")
		writeComment(&b, def.Doc)

		line, err := toml.Marshal(map[string][]string{def.Name: def.Defaults})
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", def.Name, err)
		}
		b.Write(line)
	}

	return b.String(), nil
}

func exampleYAML(reg *Registry) (string, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, def := range reg.Definitions() {
		k := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       def.Name,
			HeadComment: commentLines(def.Doc),
		}
		v := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, spec := range def.Defaults {
			v.Content = append(v.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: spec,
				Style: yaml.DoubleQuotedStyle,
			})
		}
		mapping.Content = append(mapping.Content, k, v)
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: commentLines(exampleHeader),
		Content:     []*yaml.Node{mapping},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding example: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding example: %w", err)
	}
	return buf.String(), nil
}

// commentLines prefixes every line of text with "# ".
func commentLines(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("# "+line, " ")
	}
	return strings.Join(lines, "\n")
}

func writeComment(b *strings.Builder, text string) {
	if c := commentLines(text); c != "" {
		b.WriteString(c)
		b.WriteString("\n")
	}
}
