// Package view provides output formatting for tesseract-gen commands.
package view

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Renderer writes command output, colored unless disabled.
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}

	return &Renderer{writer: w, noColor: noColor}
}

// Writer returns the underlying writer.
func (r *Renderer) Writer() io.Writer {
	return r.writer
}

// Text renders plain text.
func (r *Renderer) Text(text string) {
	fmt.Fprintln(r.writer, text)
}

// KeyValue renders a key-value pair with a bold key.
func (r *Renderer) KeyValue(key, value string) {
	bold := r.color(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	r.color(color.FgGreen).Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	r.color(color.FgYellow).Fprintln(r.writer, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	r.color(color.FgRed).Fprintln(r.writer, "✗ "+msg)
}

func (r *Renderer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}

	return c
}
