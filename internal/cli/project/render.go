package project

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu    sync.Mutex
	rendererCache = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders a project description for the terminal.
// Renderers are cached per width; on failure the raw text is returned.
func renderMarkdown(text string, width int) string {
	rendererMu.Lock()
	renderer, ok := rendererCache[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			rendererMu.Unlock()
			return text
		}
		rendererCache[width] = renderer
	}
	rendererMu.Unlock()

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
