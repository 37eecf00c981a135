package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

// Resolve maps colon-mode input to a command ID, matching the ID exactly or
// the name case-insensitively.
func (r *CommandRegistry) Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if _, ok := r.commands[input]; ok {
		return input, true
	}
	lower := strings.ToLower(input)
	for id, c := range r.commands {
		if strings.ToLower(c.Name) == lower {
			return id, true
		}
	}
	return "", false
}

// Closest returns the command ID nearest to input by edit distance, for
// "did you mean" suggestions. Empty when nothing is reasonably close.
func (r *CommandRegistry) Closest(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	best := ""
	bestDist := len(input)/2 + 2
	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		d := levenshtein.ComputeDistance(input, strings.ToLower(id))
		if n := levenshtein.ComputeDistance(input, strings.ToLower(r.commands[id].Name)); n < d {
			d = n
		}
		if d < bestDist {
			bestDist = d
			best = id
		}
	}
	return best
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		suggestion := r.Closest(id)
		if suggestion != "" {
			return StatusCmd("Unknown command: " + id + " (did you mean " + suggestion + "?)")
		}
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
