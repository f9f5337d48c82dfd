// Package formats renders task list snapshots into named output formats.
// Front ends pick a format by name so new renderers can be added without
// touching them.
package formats

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/nanotasks/tasklist"
)

// ErrUnknownFormat is returned by Get for a name that was never registered
var ErrUnknownFormat = errors.New("unknown format")

var validName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Format turns a snapshot into a document
type Format struct {
	Name      string // lowercase letters, digits, dashes and underscores
	Extension string // with the leading dot, e.g. ".md"
	Render    func(snap tasklist.Snapshot) ([]byte, error)
}

// Registry maps format names to formats
type Registry struct {
	formats map[string]*Format
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{formats: map[string]*Format{}}
}

// Register adds f. The extension gains a leading dot if it lacks one.
func (r *Registry) Register(f *Format) error {
	switch {
	case f == nil || f.Render == nil:
		return errors.New("format must have a render function")
	case !validName.MatchString(f.Name):
		return fmt.Errorf("invalid format name %q: use lowercase letters, digits, dashes or underscores", f.Name)
	case r.formats[f.Name] != nil:
		return fmt.Errorf("format %q already registered", f.Name)
	}

	if f.Extension != "" && !strings.HasPrefix(f.Extension, ".") {
		f.Extension = "." + f.Extension
	}
	r.formats[f.Name] = f
	return nil
}

// Get looks a format up by name
func (r *Registry) Get(name string) (*Format, error) {
	if f, ok := r.formats[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, name, strings.Join(r.List(), ", "))
}

// List returns the registered names in alphabetical order
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtin holds the formats shipped with nanotasks
var builtin = NewRegistry()

// Register adds a format to the built-in registry
func Register(f *Format) error { return builtin.Register(f) }

// Get returns a built-in format by name
func Get(name string) (*Format, error) { return builtin.Get(name) }

// List returns the built-in format names
func List() []string { return builtin.List() }

func mustRegister(f *Format) {
	if err := builtin.Register(f); err != nil {
		panic(err)
	}
}
