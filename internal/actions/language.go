package actions

import (
	"context"
	"sort"
	"strings"

	"github.com/rssowl/prefdeck/internal/langs"
	"github.com/rssowl/prefdeck/internal/prefs"
)

// ConfigureLanguageAction presents every registered language and opens
// settings scoped to the chosen one. Display names are sorted
// lexicographically before display; that is the only ordering guarantee.
type ConfigureLanguageAction struct {
	base
	svc        prefs.Service
	langs      langs.Registry
	picker     QuickPicker
	lastDetail string
}

func NewConfigureLanguage(svc prefs.Service, registry langs.Registry, picker QuickPicker) *ConfigureLanguageAction {
	return &ConfigureLanguageAction{
		base:   base{id: IDConfigureLanguage, label: "Configure Language Specific Settings"},
		svc:    svc,
		langs:  registry,
		picker: picker,
	}
}

func (a *ConfigureLanguageAction) Enabled() bool { return true }

func (a *ConfigureLanguageAction) Run(ctx context.Context) error {
	a.lastDetail = ""
	entries := a.Entries()
	idx, ok, err := a.picker.Pick(ctx, "Select Language", entries)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	mode, err := a.langs.ResolveMode(ctx, entries[idx].Label)
	if err != nil {
		return err
	}
	a.lastDetail = mode.ID()
	return a.svc.ConfigureLanguageSettings(ctx, mode.ID())
}

// RunDetail reports the canonical ID of the language picked by the last Run.
func (a *ConfigureLanguageAction) RunDetail() string { return a.lastDetail }

func (a *ConfigureLanguageAction) Close() error { return nil }

// Entries builds the picker rows: sorted display names, canonical id as the
// description, and a representative sample path where the language has file
// associations.
func (a *ConfigureLanguageAction) Entries() []PickEntry {
	names := a.langs.Names()
	sort.Strings(names)
	entries := make([]PickEntry, 0, len(names))
	for _, name := range names {
		lang, ok := a.langs.Lookup(name)
		if !ok {
			continue
		}
		entries = append(entries, PickEntry{
			Label:       name,
			Description: lang.ID,
			SamplePath:  samplePath(lang),
		})
	}
	return entries
}

// samplePath derives a representative path from the first registered
// extension, falling back to the first exact filename. Used purely for
// icon hinting.
func samplePath(l langs.Language) string {
	if len(l.Extensions) > 0 {
		ext := l.Extensions[0]
		if strings.HasPrefix(ext, ".") {
			return "sample" + ext
		}
		return "sample." + ext
	}
	if len(l.Filenames) > 0 {
		return l.Filenames[0]
	}
	return ""
}
