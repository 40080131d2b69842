// Package selfrender renders its own elements outside the generated file.
package selfrender

// Para is a paragraph.
//
//html:tag_name=p
type Para struct {
	Text string `html:"child"`
}

// Page returns the rendered page.
func Page() string {
	return Para{Text: "hi"}.Render()
}
