package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/internal/prefs"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// ActionFor resolves the pressed key to a bound action name within scope.
// The first matching binding wins.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Export flattens the registry into the persisted keybinding shape used by
// the raw keybindings document.
func (r *KeyRegistry) Export() []prefs.KeyBinding {
	out := make([]prefs.KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		scope := "global"
		if len(b.Scopes) > 0 && b.Scopes[0] != "*" {
			scope = b.Scopes[0]
		}
		out = append(out, prefs.KeyBinding{
			Scope:  scope,
			Action: b.Action,
			Keys:   slices.Clone(b.Keys),
			Help:   b.Description,
		})
	}
	return out
}

// ApplyActionKeybindings overrides the keys of any binding whose action
// appears in actionKeys. Bindings not named keep their defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        slices.Clone(b.Keys),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      slices.Clone(b.Scopes),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = slices.Clone(keys)
		}
		out = append(out, next)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
