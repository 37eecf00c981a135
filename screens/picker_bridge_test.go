package screens

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
)

func TestModalPickerCancellationPopsScreen(t *testing.T) {
	var sent []tea.Msg
	p := &ModalPicker{Send: func(msg tea.Msg) { sent = append(sent, msg) }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := p.Pick(ctx, "Select Folder", []actions.PickEntry{{Label: "api"}})
	if ok {
		t.Fatal("cancelled pick reported a selection")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	if len(sent) != 2 {
		t.Fatalf("sent %d messages, want push then pop", len(sent))
	}
	if _, isPush := sent[0].(core.PushScreenMsg); !isPush {
		t.Fatalf("first message = %T, want PushScreenMsg", sent[0])
	}
	if _, isPop := sent[1].(core.PopScreenMsg); !isPop {
		t.Fatalf("second message = %T, want PopScreenMsg", sent[1])
	}
}

func TestModalPickerEmptyEntriesSendsNothing(t *testing.T) {
	var sent []tea.Msg
	p := &ModalPicker{Send: func(msg tea.Msg) { sent = append(sent, msg) }}

	_, ok, err := p.Pick(context.Background(), "Select Folder", nil)
	if ok || err != nil {
		t.Fatalf("empty pick = (%v, %v), want dismissal", ok, err)
	}
	if len(sent) != 0 {
		t.Fatalf("sent %d messages for an empty pick", len(sent))
	}
}
