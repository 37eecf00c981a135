package screens

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/prefs"
)

type pickOutcome struct {
	index int
	ok    bool
}

// ModalPicker satisfies the action layer's quick pick interface by pushing
// a QuickPickScreen onto the running program and blocking until the user
// selects or dismisses. Pick must be called off the update loop; actions
// run inside tea.Cmd goroutines, which satisfies that.
type ModalPicker struct {
	Send func(tea.Msg)
}

func (p *ModalPicker) Pick(ctx context.Context, title string, entries []actions.PickEntry) (int, bool, error) {
	if len(entries) == 0 {
		return 0, false, nil
	}
	result := make(chan pickOutcome, 1)
	screen := NewQuickPickScreen(title, entries, func(index int, ok bool) {
		result <- pickOutcome{index: index, ok: ok}
	})
	p.Send(core.PushScreenMsg{Screen: screen})
	select {
	case out := <-result:
		return out.index, out.ok, nil
	case <-ctx.Done():
		// The screen is still on the stack; remove it so the user is not
		// left staring at a pick whose run has already resolved.
		p.Send(core.PopScreenMsg{})
		return 0, false, ctx.Err()
	}
}

// DocumentOpener satisfies the preference service's opener by pushing a
// viewer screen. Opening means the document is on screen; it never blocks.
type DocumentOpener struct {
	Send func(tea.Msg)
}

func (o *DocumentOpener) OpenDocument(ctx context.Context, doc prefs.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.Send(core.PushScreenMsg{Screen: NewDocumentScreen(doc)})
	return nil
}
