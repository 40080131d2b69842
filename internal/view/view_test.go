package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_NoColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Success("generated 1 file")
	r.Warning("site.Head: field Note is not rendered")
	r.Error("site.Meta: Viewport: required html annotation missing")
	r.KeyValue("style", "PascalCase")
	r.Text("done")

	want := "✓ generated 1 file\n" +
		"! site.Head: field Note is not rendered\n" +
		"✗ site.Meta: Viewport: required html annotation missing\n" +
		"style: PascalCase\n" +
		"done\n"

	assert.Equal(t, want, buf.String())
	assert.Same(t, &buf, r.Writer())
}
