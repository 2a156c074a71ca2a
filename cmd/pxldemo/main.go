// Command pxldemo runs a scripted drawing session with the pxl paint engine
// and saves the result.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/internal/config"
	"github.com/gogpu/pxl/internal/imageio"
	"github.com/gogpu/pxl/tool"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML settings file (default: built-in settings)")
		input      = flag.String("input", "", "image to start from instead of a blank canvas")
		output     = flag.String("output", "pxldemo.png", "output image (png, jpg, gif, bmp, tif)")
		display    = flag.String("display", "", "also save the zoomed display image here")
		pdf        = flag.String("pdf", "", "also export a single-page PDF here")
		verbose    = flag.Bool("v", false, "log every engine event")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	pxl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s, err := run(context.Background(), cfg, *input)
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	if err := imageio.Save(*output, s.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	size := s.Size()
	log.Printf("Image saved to %s (%dx%d)\n", *output, size.Width, size.Height)

	if *display != "" {
		if err := imageio.Save(*display, s.Display()); err != nil {
			log.Fatalf("Failed to save display image: %v", err)
		}
		log.Printf("Display image saved to %s (zoom %gx)\n", *display, s.Scale().X)
	}
	if *pdf != "" {
		if err := imageio.ExportPDF(*pdf, s.Image(), s.Scale().X); err != nil {
			log.Fatalf("Failed to export PDF: %v", err)
		}
		log.Printf("PDF exported to %s\n", *pdf)
	}
}

// run builds an editor from cfg and plays a short session on it.
func run(ctx context.Context, cfg config.Config, input string) (*pxl.Surface, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.NewPalette()
	if err != nil {
		return nil, err
	}
	lang, err := cfg.Tag()
	if err != nil {
		return nil, err
	}

	s, err := pxl.NewSurface(cfg.Canvas.Width, cfg.Canvas.Height, pxl.WithBackground(bg))
	if err != nil {
		return nil, err
	}
	h := pxl.NewHistory(pxl.WithMaxSize(cfg.HistorySize))

	if input != "" {
		img, err := imageio.Load(input)
		if err != nil {
			return nil, err
		}
		before, beforeSize := s.Main().Snapshot(), s.Size()
		if err := s.Load(img); err != nil {
			return nil, err
		}
		h.Push(s.SnapshotEntry("Open "+input, before, beforeSize))
	}

	h.OnChange(func(ev pxl.Event) {
		log.Printf("history: %s %q\n", ev.Kind, ev.Entry.Description)
	})

	env := tool.Env{
		Surface:    s,
		History:    h,
		Colors:     colors,
		Lang:       lang,
		ZoomLevels: cfg.ZoomLevels,
	}
	m := tool.NewManager()
	if err := tool.DefaultRegistry().Load(m, env, "pencil", "line", "ellipse", "fill", "zoom"); err != nil {
		return nil, err
	}
	return s, script(ctx, m, colors, h, s.Size())
}

type colorSetter interface {
	SetForeground(i int) error
	SetBackground(i int) error
}

// script draws a small scene scaled to the canvas size.
func script(ctx context.Context, m *tool.Manager, colors colorSetter, h *pxl.History, size pxl.Size) error {
	w, hh := float64(size.Width), float64(size.Height)
	at := func(fx, fy float64) tool.Event {
		return tool.Event{X: fx * (w - 1), Y: fy * (hh - 1)}
	}

	steps := []func() error{
		// Red frame-ish ellipse filled with yellow.
		func() error { return colors.SetForeground(5) },
		func() error { return colors.SetBackground(7) },
		func() error { return m.SelectByName("Ellipse Tool") },
		func() error { return selectOption(m, 1) },
		func() error { return m.Drag(ctx, at(0.1, 0.1), at(0.5, 0.5), at(0.9, 0.9)) },

		// Blue diagonals, the second one thicker.
		func() error { return colors.SetForeground(13) },
		func() error { return m.SelectByName("Line Tool") },
		func() error { return m.Drag(ctx, at(0, 0), at(1, 1)) },
		func() error { return selectOption(m, 2) },
		func() error { return m.Drag(ctx, at(1, 0), at(0, 1)) },

		// A scribble that gets undone and redone.
		func() error { return colors.SetForeground(0) },
		func() error { return m.SelectByName("Pencil") },
		func() error {
			return m.Drag(ctx, at(0.2, 0.8), at(0.3, 0.7), at(0.4, 0.8), at(0.5, 0.7), at(0.6, 0.8))
		},
		func() error { return h.Undo(ctx) },
		func() error { return h.Redo(ctx) },

		// Fill the top corner region green.
		func() error { return colors.SetForeground(9) },
		func() error { return m.SelectByName("Fill") },
		func() error { return m.Drag(ctx, at(0.5, 0.02)) },

		// Zoom in once.
		func() error { return m.SelectByName("Zoom") },
		func() error { return m.Drag(ctx, at(0.5, 0.5)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func selectOption(m *tool.Manager, i int) error {
	c, ok := m.Selected().(tool.Configurable)
	if !ok {
		return nil
	}
	return c.SelectOption(i)
}
