// Package render provides markdown rendering utilities for terminal output.
package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// glamour.TermRenderer is not safe for concurrent Render calls, so
// renderers are pooled per width instead of shared.
var pools sync.Map // width -> *sync.Pool

func pool(width int) *sync.Pool {
	if p, ok := pools.Load(width); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{
		New: func() interface{} {
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(width),
				glamour.WithEmoji(),
			)
			if err != nil {
				return nil
			}
			return r
		},
	}
	actual, _ := pools.LoadOrStore(width, p)
	return actual.(*sync.Pool)
}

// MarkdownWithWidth renders markdown word-wrapped to width. Callers are
// expected to fall back to the raw content on error.
func MarkdownWithWidth(content string, width int) (string, error) {
	if width < 1 {
		width = 80
	}

	p := pool(width)
	r, _ := p.Get().(*glamour.TermRenderer)
	if r == nil {
		// Renderer construction failed; plain text is still usable.
		return content, nil
	}
	defer p.Put(r)

	return r.Render(content)
}
