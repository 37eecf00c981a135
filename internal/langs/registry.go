// Package langs is the registry of languages the editor knows about: their
// display names, canonical identifiers, and file associations.
package langs

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Language describes one registered language. Name is the user-facing
// display name; ID is the canonical identifier used for scoped settings.
type Language struct {
	ID         string
	Name       string
	Extensions []string
	Filenames  []string
}

// Mode is a materialized language mode. Materialization may be lazy; the
// only contract here is access to the canonical identifier.
type Mode interface {
	ID() string
}

// Registry lists registered languages and materializes modes on demand.
type Registry interface {
	// Names returns the display names of all registered languages, in
	// registration order. Callers that present the list sort it themselves.
	Names() []string
	// Lookup resolves a display name to its descriptor.
	Lookup(name string) (Language, bool)
	// ResolveMode materializes the mode for a display name. The result is
	// cached after the first call.
	ResolveMode(ctx context.Context, name string) (Mode, error)
}

// StaticRegistry is a Registry over a fixed language table.
type StaticRegistry struct {
	order  []string
	byName map[string]Language

	mu    sync.Mutex
	modes map[string]Mode
}

// NewStaticRegistry builds a registry from the given descriptors. Languages
// without an ID or Name are skipped; duplicate names keep the first entry.
func NewStaticRegistry(languages ...Language) *StaticRegistry {
	r := &StaticRegistry{
		byName: make(map[string]Language, len(languages)),
		modes:  make(map[string]Mode),
	}
	for _, l := range languages {
		if strings.TrimSpace(l.ID) == "" || strings.TrimSpace(l.Name) == "" {
			continue
		}
		key := nameKey(l.Name)
		if _, ok := r.byName[key]; ok {
			continue
		}
		r.byName[key] = l
		r.order = append(r.order, l.Name)
	}
	return r
}

func (r *StaticRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *StaticRegistry) Lookup(name string) (Language, bool) {
	l, ok := r.byName[nameKey(name)]
	return l, ok
}

func (r *StaticRegistry) ResolveMode(ctx context.Context, name string) (Mode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.modes[l.ID]; ok {
		return m, nil
	}
	m := staticMode{id: l.ID}
	r.modes[l.ID] = m
	return m, nil
}

type staticMode struct {
	id string
}

func (m staticMode) ID() string { return m.id }

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Builtin returns the registry of languages shipped with the editor.
func Builtin() *StaticRegistry {
	return BuiltinWith()
}

// BuiltinWith returns the built-in registry extended with the given
// languages, typically the user's [[languages]] config entries. Extras
// follow the usual registration rules: missing IDs or names are skipped
// and the built-in entry wins a name collision.
func BuiltinWith(extras ...Language) *StaticRegistry {
	return NewStaticRegistry(append(builtinTable(), extras...)...)
}

func builtinTable() []Language {
	return []Language{
		{ID: "c", Name: "C", Extensions: []string{".c", ".h"}},
		{ID: "cpp", Name: "C++", Extensions: []string{".cpp", ".cc", ".hpp"}},
		{ID: "css", Name: "CSS", Extensions: []string{".css"}},
		{ID: "dockerfile", Name: "Dockerfile", Filenames: []string{"Dockerfile"}},
		{ID: "go", Name: "Go", Extensions: []string{".go"}},
		{ID: "html", Name: "HTML", Extensions: []string{".html", ".htm"}},
		{ID: "java", Name: "Java", Extensions: []string{".java"}},
		{ID: "javascript", Name: "JavaScript", Extensions: []string{".js", ".mjs"}},
		{ID: "json", Name: "JSON", Extensions: []string{".json"}},
		{ID: "makefile", Name: "Makefile", Filenames: []string{"Makefile", "makefile", "GNUmakefile"}},
		{ID: "markdown", Name: "Markdown", Extensions: []string{".md", ".markdown"}},
		{ID: "python", Name: "Python", Extensions: []string{".py"}},
		{ID: "rust", Name: "Rust", Extensions: []string{".rs"}},
		{ID: "shellscript", Name: "Shell Script", Extensions: []string{".sh", ".bash"}},
		{ID: "sql", Name: "SQL", Extensions: []string{".sql"}},
		{ID: "toml", Name: "TOML", Extensions: []string{".toml"}},
		{ID: "typescript", Name: "TypeScript", Extensions: []string{".ts", ".tsx"}},
		{ID: "yaml", Name: "YAML", Extensions: []string{".yaml", ".yml"}},
	}
}
