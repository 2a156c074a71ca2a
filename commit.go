package pxl

import (
	"context"
	"fmt"
	"image"
)

// patch is a rectangular piece of pixel data cut from a pixmap.
type patch struct {
	rect image.Rectangle
	pix  []uint8
}

// apply writes the patch back into p.
func (pt patch) apply(p *Pixmap) error {
	return p.SetRegion(pt.rect, pt.pix)
}

// CommitWithHistory commits the preview and records the change in h.
//
// Only the part of main covered by the preview is captured, before and
// after the commit, so an entry costs memory proportional to the edit
// rather than to the whole image. The undo action restores the "before"
// patch and the redo action the "after" patch.
//
// If the preview is empty nothing is committed or recorded and false is
// returned. ctx is checked before any pixel is touched.
func (s *Surface) CommitWithHistory(ctx context.Context, h *History, description string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("pxl: commit %q: %w", description, err)
	}

	r := s.PreviewBounds()
	if r.Empty() {
		s.preview.Clear()
		return false, nil
	}

	var before, after patch
	before.rect, before.pix = s.main.Region(r)
	s.Commit()
	after.rect, after.pix = s.main.Region(r)

	h.Push(Entry{
		Description: description,
		Undo:        s.restoreAction(before),
		Redo:        s.restoreAction(after),
	})
	return true, nil
}

// restoreAction returns an action writing pt back into main. If the
// surface shrank so that the patch no longer fits, the action fails with
// ErrOutOfBounds instead of writing outside the layer.
func (s *Surface) restoreAction(pt patch) Action {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pt.apply(s.main); err != nil {
			return err
		}
		for _, fn := range s.commitObservers {
			fn(pt.rect)
		}
		return nil
	}
}

// SnapshotEntry returns a history entry that restores the whole main layer
// as it was before and after an arbitrary edit. It is meant for operations
// that are not expressed through the preview, such as clearing or loading
// an image. The caller takes the "before" snapshot with [Pixmap.Snapshot],
// performs the edit, then calls SnapshotEntry.
func (s *Surface) SnapshotEntry(description string, before []uint8, beforeSize Size) Entry {
	after := s.main.Snapshot()
	afterSize := s.Size()
	return Entry{
		Description: description,
		Undo:        s.restoreSnapshot(beforeSize, before),
		Redo:        s.restoreSnapshot(afterSize, after),
	}
}

func (s *Surface) restoreSnapshot(size Size, pix []uint8) Action {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Size() != size {
			if err := s.Resize(size.Width, size.Height); err != nil {
				return err
			}
		}
		return s.main.Restore(pix)
	}
}
