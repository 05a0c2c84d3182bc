package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Layout wraps body in the console's HTML document. The screens are
// gomponents; the shell around them is a templ component so pages go through
// the same renderer path as any templ layout. The main element is boosted
// with htmx so form posts and redirects swap the page without a full reload.
func Layout(title, lang string, body ...g.Node) templ.Component {
	content := Main(hx.Boost("true"), Style("padding: 20px"), g.Group(body))

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head>` +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<script src="` + htmxSrc + `" defer></script>` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := content.Render(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
