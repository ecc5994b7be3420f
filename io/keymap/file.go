// SPDX-License-Identifier: Unlicense OR MIT

package keymap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"samerion.com/fluid/io/event"
)

// fileBinding is one stroke in a keymap file, e.g.
//
//	[[binding]]
//	action = "submit"
//	stroke = "Ctrl+Enter"
type fileBinding struct {
	Action string `toml:"action"`
	Stroke string `toml:"stroke"`
}

type file struct {
	Bindings []fileBinding `toml:"binding"`
}

// Load reads TOML bindings from r and appends them to m in file order,
// so file bindings take priority over anything bound earlier. Unknown
// action names and malformed strokes are load errors; file input is
// user data, not a programmer error.
func (m *Mapping) Load(r io.Reader) error {
	var f file
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("keymap: decoding bindings: %w", err)
	}
	for _, b := range f.Bindings {
		action, ok := event.LookupAction(b.Action)
		if !ok {
			return fmt.Errorf("keymap: unknown action %q", b.Action)
		}
		codes, err := ParseStroke(b.Stroke)
		if err != nil {
			return err
		}
		m.Bind(action, codes...)
	}
	return nil
}

// Save writes m to w as TOML. Within each layer bindings are written in
// registration order, so loading the file reproduces their priorities.
func (m *Mapping) Save(w io.Writer) error {
	var f file
	for _, l := range m.Layers {
		for _, b := range l.Bindings {
			name, ok := event.ActionName(b.Action)
			if !ok {
				return fmt.Errorf("keymap: action %v has no registered name", b.Action)
			}
			stroke := append(append([]event.Code{}, l.Modifiers...), b.Code)
			f.Bindings = append(f.Bindings, fileBinding{
				Action: name,
				Stroke: FormatStroke(stroke...),
			})
		}
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("keymap: encoding bindings: %w", err)
	}
	return nil
}

// LoadFile loads bindings from the file at path on top of m.
func (m *Mapping) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}
	defer f.Close()
	return m.Load(f)
}

// SaveFile writes m to the file at path.
func (m *Mapping) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseStroke parses a "Ctrl+C" style stroke into event codes.
func ParseStroke(s string) ([]event.Code, error) {
	parts := strings.Split(s, "+")
	codes := make([]event.Code, len(parts))
	for i, p := range parts {
		c, err := event.ParseCode(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("keymap: stroke %q: %w", s, err)
		}
		codes[i] = c
	}
	return codes, nil
}

// FormatStroke is the inverse of ParseStroke.
func FormatStroke(codes ...event.Code) string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.String()
	}
	return strings.Join(names, "+")
}
