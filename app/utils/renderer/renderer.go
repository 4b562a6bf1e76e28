package renderer

import (
	"github.com/unrolled/render"
)

// New returns the JSON renderer shared by the admin handlers. Output is
// indented in development.
func New(indent bool) *render.Render {
	return render.New(render.Options{
		IndentJSON:    indent,
		StreamingJSON: false,
		UnEscapeHTML:  true,
	})
}
