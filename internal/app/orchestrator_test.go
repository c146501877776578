package app

import (
	"testing"

	"github.com/justyntemme/tabstrip"
	"github.com/justyntemme/tabstrip/internal/store"
)

// Store responses must only reach the bar through drainStoreEvents on
// the frame loop, never from the worker goroutine.
func TestDrainStoreEvents_AppliesOnFrameLoop(t *testing.T) {
	o := NewOrchestrator(false)
	o.bar = tabstrip.New[string, message](tabstrip.Config{}, nil, tabstrip.Callbacks[string, message]{})

	o.storeEvents <- store.Response{
		Op: store.FetchSession,
		Tabs: []store.SessionTab{
			{ID: "tab-1", Title: "Tab 1"},
			{ID: "tab-2", Title: "Tab 2"},
		},
		Active: "tab-2",
	}

	if o.bar.Len() != 0 {
		t.Fatalf("response applied before drain: %d tabs", o.bar.Len())
	}

	o.drainStoreEvents()

	if o.bar.Len() != 2 {
		t.Fatalf("Len = %d, want 2", o.bar.Len())
	}
	if id, _ := o.bar.ActiveID(); id != "tab-2" {
		t.Errorf("active = %q, want tab-2", id)
	}
	if o.tabCounter != 2 {
		t.Errorf("tabCounter = %d, want 2", o.tabCounter)
	}

	// a drained channel is a no-op
	o.drainStoreEvents()
	if o.bar.Len() != 2 {
		t.Fatalf("second drain mutated the bar: %d tabs", o.bar.Len())
	}
}
