// Package pxl provides a pixel-accurate raster drawing engine for paint
// programs.
//
// # Overview
//
// pxl draws blocky, non-anti-aliased shapes onto a fixed-resolution bitmap
// the way classic paint programs do. It is made of four pieces:
//   - Pixmap: an addressable grid of opaque RGB pixels
//   - Drawing routines: PutPixel, DrawLine, DrawEllipse, FloodFill
//   - Surface: a main layer plus a preview layer with atomic commit
//   - History: a bounded, linear undo/redo log
//
// # Quick Start
//
//	s, _ := pxl.NewSurface(320, 200)
//	h := pxl.NewHistory()
//
//	// Draw a gesture into the preview...
//	pxl.DrawLine(s.Preview(), 10, 10, 120, 80, 1, pxl.Black)
//
//	// ...and commit it as one undoable step.
//	_, _ = s.CommitWithHistory(ctx, h, "Paint with Line")
//	_ = h.Undo(ctx)
//
// # Coordinate System
//
// Coordinates are logical pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The display scale of a Surface only affects [Surface.Display]; drawing
// always happens at logical resolution. Tools live in the tool package and
// translate pointer events into calls to the drawing routines.
//
// # Concurrency
//
// The engine assumes a single event loop. None of the types are safe for
// concurrent use; drawing routines run to completion once called.
package pxl

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
