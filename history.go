package pxl

import (
	"context"
	"fmt"
)

// Action is one direction of a reversible edit. Actions may block (for
// example while pixel data is restored from elsewhere) and receive the
// caller's context for that purpose.
type Action func(ctx context.Context) error

// Entry is one discrete step of the edit history.
type Entry struct {
	// Description is a human-readable label, e.g. "Paint with Pencil".
	Description string

	// Undo reverts the edit.
	Undo Action

	// Redo applies the edit again after it was undone.
	Redo Action
}

// EventKind identifies what happened to a History.
type EventKind int

// History event kinds.
const (
	EventPush EventKind = iota
	EventUndo
	EventRedo
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a completed history operation.
type Event struct {
	Kind  EventKind
	Entry Entry
}

// History is a bounded, linear undo/redo log.
//
// Entries up to and including the pointer have been applied; entries after
// it were undone and can be redone. Pushing a new entry discards everything
// after the pointer, so any redo history is lost as soon as a new edit is
// made. When the log is full the oldest entry is dropped.
//
// History is NOT safe for concurrent use. At most one Undo or Redo may be
// in flight; callers serialize them.
type History struct {
	entries   []Entry
	pointer   int
	maxSize   int
	observers []func(Event)
}

// NewHistory creates an empty history.
func NewHistory(opts ...HistoryOption) *History {
	h := &History{
		pointer: -1,
		maxSize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// MaxSize returns the maximum number of entries kept.
func (h *History) MaxSize() int {
	return h.maxSize
}

// Len returns the number of entries, undone ones included.
func (h *History) Len() int {
	return len(h.entries)
}

// Pointer returns the index of the last applied entry, or -1.
func (h *History) Pointer() int {
	return h.pointer
}

// CanUndo reports whether there is an applied entry to undo.
func (h *History) CanUndo() bool {
	return len(h.entries) > 0 && h.pointer >= 0
}

// CanRedo reports whether there is an undone entry to redo.
func (h *History) CanRedo() bool {
	return h.pointer < len(h.entries)-1
}

// UndoDescription returns the description of the entry Undo would revert.
func (h *History) UndoDescription() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	return h.entries[h.pointer].Description, true
}

// RedoDescription returns the description of the entry Redo would apply.
func (h *History) RedoDescription() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	return h.entries[h.pointer+1].Description, true
}

// Descriptions returns the descriptions of all entries, oldest first.
func (h *History) Descriptions() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Description
	}
	return out
}

// Push appends e after the pointer, discarding any undone entries, and
// evicts the oldest entries while the log exceeds its bound.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.pointer+1], e)
	if n := len(h.entries) - h.maxSize; n > 0 {
		for i := range n {
			h.entries[i] = Entry{}
		}
		h.entries = h.entries[n:]
		Logger().Debug("pxl: history evicted oldest entries", "count", n)
	}
	h.pointer = len(h.entries) - 1
	h.notify(Event{Kind: EventPush, Entry: e})
}

// Undo reverts the last applied entry. With nothing to undo it logs a
// warning and returns nil. If the undo action fails the pointer is left
// unchanged and the error is returned.
func (h *History) Undo(ctx context.Context) error {
	if !h.CanUndo() {
		Logger().Warn("pxl: undo requested but no undo entry available")
		return nil
	}
	e := h.entries[h.pointer]
	if e.Undo != nil {
		if err := e.Undo(ctx); err != nil {
			return fmt.Errorf("pxl: undo %q: %w", e.Description, err)
		}
	}
	h.pointer--
	h.notify(Event{Kind: EventUndo, Entry: e})
	return nil
}

// Redo applies the entry after the pointer again. With nothing to redo it
// logs a warning and returns nil. If the redo action fails the pointer is
// left unchanged and the error is returned.
func (h *History) Redo(ctx context.Context) error {
	if !h.CanRedo() {
		Logger().Warn("pxl: redo requested but no redo entry available")
		return nil
	}
	e := h.entries[h.pointer+1]
	if e.Redo != nil {
		if err := e.Redo(ctx); err != nil {
			return fmt.Errorf("pxl: redo %q: %w", e.Description, err)
		}
	}
	h.pointer++
	h.notify(Event{Kind: EventRedo, Entry: e})
	return nil
}

// OnChange registers fn to be called after every push, undo and redo.
func (h *History) OnChange(fn func(Event)) {
	h.observers = append(h.observers, fn)
}

func (h *History) notify(ev Event) {
	for _, fn := range h.observers {
		fn(ev)
	}
}
