package core

import (
	"sort"
	"strings"
)

type PickerItem struct {
	ID     string
	Label  string
	Detail string
	Sample string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
	Index  int
}

// Picker holds the filter state for an overlay list. Items keep their input
// order when scores tie, so pre-sorted inputs stay sorted.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []scoredPickerItem
	query    string
	cursor   int
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string { return p.title }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }

func (p *Picker) Items() []PickerItem {
	out := make([]PickerItem, 0, len(p.filtered))
	for _, row := range p.filtered {
		out = append(out, row.item)
	}
	return out
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

// CurrentIndex reports the position of the highlighted row in the original
// item slice, not in the filtered view.
func (p *Picker) CurrentIndex() (int, bool) {
	if len(p.filtered) == 0 {
		return 0, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx].index, true
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx].item, true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "ctrl+n":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		index, _ := p.CurrentIndex()
		return PickerResult{Action: PickerActionSelected, Item: item, Index: index}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{Action: PickerActionNone}
	case "space":
		p.SetQuery(p.query + " ")
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	out := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := item.Label
		if item.Detail != "" {
			search += " " + item.Detail
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		out = append(out, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})
	p.filtered = out

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
