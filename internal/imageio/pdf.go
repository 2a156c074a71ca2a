// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfImageName is the name the bitmap is registered under in the document.
const pdfImageName = "surface"

// WritePDF writes a single-page PDF showing img. The page has the size of
// the image at scale points per pixel, so the bitmap fills it exactly.
// Non-positive scales are treated as 1.
func WritePDF(w io.Writer, img image.Image, scale float64) error {
	b := img.Bounds()
	if b.Empty() {
		return ErrEmptyImage
	}
	if scale <= 0 {
		scale = 1
	}
	pw, ph := float64(b.Dx())*scale, float64(b.Dy())*scale

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("imageio: pdf: encode bitmap: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &buf)
	pdf.ImageOptions(pdfImageName, 0, 0, pw, ph, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("imageio: pdf: %w", err)
	}
	return nil
}

// ExportPDF writes img to path as a single-page PDF.
func ExportPDF(path string, img image.Image, scale float64) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePDF(w, img, scale)
	})
}
