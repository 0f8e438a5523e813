// Package output writes captured diagrams to disk.
// The destination extension picks the format: .png is the element
// screenshot as-is, .pdf embeds that screenshot on a page of the same size,
// and .svg is the element's own markup.
package output

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/jung-kurt/gofpdf"
)

// Formats lists the supported output extensions without the dot.
var Formats = []string{"png", "pdf", "svg"}

// pxToPt converts CSS pixels (96 dpi) into PDF points (72 dpi).
const pxToPt = 72.0 / 96.0

// Writer writes captures to disk.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

// Write stores capture at path, creating parent directories as needed.
// An existing file is overwritten.
func (w *Writer) Write(path string, capture *core.Capture) error {
	data, err := Encode(filepath.Ext(path), capture)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// Supported reports whether ext (with or without the dot) can be written.
func Supported(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, f := range Formats {
		if f == ext {
			return true
		}
	}
	return false
}

// Encode converts capture into the bytes of the format named by ext.
func Encode(ext string, capture *core.Capture) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".png":
		if len(capture.PNG) == 0 {
			return nil, fmt.Errorf("empty screenshot")
		}
		return capture.PNG, nil
	case ".svg":
		if capture.SVG == "" {
			return nil, fmt.Errorf("empty svg markup")
		}
		return []byte(svgDocument(capture.SVG)), nil
	case ".pdf":
		return encodePDF(capture.PNG)
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %v)", core.ErrUnsupportedFormat, ext, Formats)
	}
}

// svgDocument turns an inline <svg> element into a standalone file.
func svgDocument(markup string) string {
	markup = strings.TrimSpace(markup)
	if !strings.Contains(markup, "xmlns=") {
		markup = strings.Replace(markup, "<svg", `<svg xmlns="http://www.w3.org/2000/svg"`, 1)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + markup + "\n"
}

// encodePDF places the PNG on a single page sized to the image.
func encodePDF(img []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decoding screenshot: %w", err)
	}
	w := float64(cfg.Width) * pxToPt
	h := float64(cfg.Height) * pxToPt

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("diagram", opts, bytes.NewReader(img))
	pdf.ImageOptions("diagram", 0, 0, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
