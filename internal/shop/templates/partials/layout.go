// Package partials holds view fragments shared across pages.
package partials

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tiendago/storefront/internal/shop/flash"
)

// Layout wraps body in the page shell: shared head, top bar, the flash
// notice region and the client script that dismisses success notices.
func Layout(title string, notice *flash.Notice, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\"/>\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
		fmt.Fprintf(&b, "<title>%s | Storefront</title>\n", templ.EscapeString(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/css/styles.css\"/>\n")
		b.WriteString("</head>\n<body>\n")
		b.WriteString("<header class=\"topbar\"><a class=\"brand\" href=\"/\">Storefront</a></header>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := NoticeBanner(notice).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<main>\n"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n<script src=\"/static/js/shop.js\"></script>\n</body>\n</html>\n")
		return err
	})
}

// NoticeBanner renders a flash notice, or nothing when notice is nil.
// Success notices carry the auto-dismiss interval for the client script.
func NoticeBanner(notice *flash.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if notice == nil || notice.Message == "" {
			return nil
		}
		kind := string(notice.Kind)
		if kind == "" {
			kind = string(flash.KindError)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "<div class=\"notice notice-%s\" role=\"alert\"", templ.EscapeString(kind))
		if notice.Kind == flash.KindSuccess {
			fmt.Fprintf(&b, " data-autodismiss-ms=\"%d\"", flash.SuccessTTL.Milliseconds())
		}
		fmt.Fprintf(&b, ">%s</div>\n", templ.EscapeString(notice.Message))
		_, err := io.WriteString(w, b.String())
		return err
	})
}
