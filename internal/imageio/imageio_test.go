// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.Set(2, 3, color.NRGBA{R: 255, A: 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", FormatPNG},
		{"dir/b.JPG", FormatJPEG},
		{"c.jpeg", FormatJPEG},
		{"d.gif", FormatGIF},
		{"e.bmp", FormatBMP},
		{"f.tif", FormatTIFF},
		{"g.TIFF", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, p := range []string{"noext", "x.webp", "y.pdf"} {
		if _, err := FormatFromPath(p); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) = %v, want ErrUnsupportedFormat", p, err)
		}
	}
}

// Lossless formats must return the exact pixels.
func TestEncodeDecodeLossless(t *testing.T) {
	src := testImage()
	for _, f := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatal(err)
			}
			img, got, err := Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if got != f {
				t.Errorf("detected %v, want %v", got, f)
			}
			if img.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
			r, g, b, _ := img.At(2, 3).RGBA()
			if r>>8 != 255 || g != 0 || b != 0 {
				t.Errorf("pixel (2,3) = %d %d %d, want red", r>>8, g>>8, b>>8)
			}
			r, g, b, _ = img.At(0, 0).RGBA()
			if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
				t.Errorf("pixel (0,0) = %d %d %d, want white", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncodeDecodeLossy(t *testing.T) {
	src := testImage()
	for _, f := range []Format{FormatJPEG, FormatGIF} {
		var buf bytes.Buffer
		if err := Encode(&buf, src, f); err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		img, got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		if got != f || img.Bounds() != src.Bounds() {
			t.Errorf("%v: decoded %v with bounds %v", f, got, img.Bounds())
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewNRGBA(image.Rectangle{}), FormatPNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image: %v", err)
	}
	if err := Encode(&buf, testImage(), Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format: %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(garbage) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if img.Bounds() != src.Bounds() {
			t.Errorf("%s: bounds = %v", name, img.Bounds())
		}
	}

	if err := Save(filepath.Join(dir, "out.xyz"), src); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.xyz")); !os.IsNotExist(err) {
		t.Error("unsupported save left a file behind")
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, testImage(), 2); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 8)])
	}
	if !bytes.Contains(out, []byte("/MediaBox [0 0 16.00 12.00]")) {
		t.Error("page size does not match the scaled image")
	}

	if err := WritePDF(&buf, image.NewNRGBA(image.Rectangle{}), 1); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image: %v", err)
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := ExportPDF(path, testImage(), 1); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}
