package pxl

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestCommitWithHistoryUndoRedo(t *testing.T) {
	ctx := context.Background()
	s := mustSurface(t, 16, 16, WithBackground(White))
	h := NewHistory()

	original := s.Main().Snapshot()
	DrawEllipse(s.Preview(), 2, 2, 12, 9, 1, Red, true)
	ok, err := s.CommitWithHistory(ctx, h, "Paint with Ellipse")
	if err != nil || !ok {
		t.Fatalf("CommitWithHistory() = %v, %v", ok, err)
	}
	edited := s.Main().Snapshot()
	if bytes.Equal(original, edited) {
		t.Fatal("commit did not change main")
	}
	if d, _ := h.UndoDescription(); d != "Paint with Ellipse" {
		t.Errorf("UndoDescription() = %q", d)
	}

	if err := h.Undo(ctx); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(original, s.Main().Data()) {
		t.Error("undo did not restore the original pixels")
	}
	if err := h.Redo(ctx); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(edited, s.Main().Data()) {
		t.Error("redo did not restore the edited pixels")
	}
}

func TestCommitWithHistorySequence(t *testing.T) {
	ctx := context.Background()
	s := mustSurface(t, 10, 10, WithBackground(White))
	h := NewHistory(WithMaxSize(5))

	var states [][]byte
	states = append(states, s.Main().Snapshot())
	for i, c := range []RGB{Red, Green, Blue} {
		// Overlapping edits exercise patch ordering.
		PutPixel(s.Preview(), i, i, 4, c)
		if _, err := s.CommitWithHistory(ctx, h, c.String()); err != nil {
			t.Fatal(err)
		}
		states = append(states, s.Main().Snapshot())
	}

	for i := len(states) - 2; i >= 0; i-- {
		if err := h.Undo(ctx); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(states[i], s.Main().Data()) {
			t.Fatalf("after undo to state %d pixels differ", i)
		}
	}
	for i := 1; i < len(states); i++ {
		if err := h.Redo(ctx); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(states[i], s.Main().Data()) {
			t.Fatalf("after redo to state %d pixels differ", i)
		}
	}
}

func TestCommitWithHistoryEmptyPreview(t *testing.T) {
	s := mustSurface(t, 4, 4)
	h := NewHistory()
	ok, err := s.CommitWithHistory(context.Background(), h, "nothing")
	if err != nil || ok {
		t.Errorf("CommitWithHistory() = %v, %v, want false, nil", ok, err)
	}
	if h.Len() != 0 {
		t.Error("empty commit recorded a history entry")
	}
}

func TestCommitWithHistoryCanceled(t *testing.T) {
	s := mustSurface(t, 4, 4)
	h := NewHistory()
	PutPixel(s.Preview(), 1, 1, 1, Red)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.CommitWithHistory(ctx, h, "late"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if h.Len() != 0 || s.PreviewBounds().Empty() {
		t.Error("canceled commit changed state")
	}
}

func TestCommitPatchAfterShrink(t *testing.T) {
	ctx := context.Background()
	s := mustSurface(t, 10, 10)
	h := NewHistory()
	PutPixel(s.Preview(), 6, 6, 3, Red)
	if _, err := s.CommitWithHistory(ctx, h, "corner"); err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(4, 4); err != nil {
		t.Fatal(err)
	}
	if err := h.Undo(ctx); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Undo() after shrink error = %v, want ErrOutOfBounds", err)
	}
}

func TestSnapshotEntry(t *testing.T) {
	ctx := context.Background()
	s := mustSurface(t, 6, 6, WithBackground(White))
	h := NewHistory()
	PutPixel(s.Main(), 1, 1, 2, Red)

	before, beforeSize := s.Main().Snapshot(), s.Size()
	if err := s.Resize(3, 3); err != nil {
		t.Fatal(err)
	}
	s.Clear(Blue)
	h.Push(s.SnapshotEntry("New image", before, beforeSize))

	if err := h.Undo(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Size() != beforeSize || !bytes.Equal(before, s.Main().Data()) {
		t.Error("undo did not restore size and pixels")
	}
	if err := h.Redo(ctx); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Main().Pixel(2, 2); got != Blue || s.Size() != (Size{3, 3}) {
		t.Errorf("redo state = %v at %v", got, s.Size())
	}
}
