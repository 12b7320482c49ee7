package payment

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tiendago/storefront/internal/shop/templates/partials"
)

// Index renders the full checkout page.
func Index(data PageData) templ.Component {
	return partials.Layout(data.Title, data.Notice, content(data))
}

func content(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeSummary(&b, data)
		writeForm(&b, data)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSummary(b *strings.Builder, data PageData) {
	b.WriteString("<section id=\"paymentSummary\" class=\"payment-summary\" aria-label=\"Order summary\">\n")
	b.WriteString("<h2>Order summary</h2>\n<ul>\n")
	for _, line := range data.Lines {
		fmt.Fprintf(b, "<li><span class=\"summary-name\">%s</span> <span class=\"summary-price\">%s</span></li>\n",
			templ.EscapeString(line.Name), templ.EscapeString(line.Price))
	}
	b.WriteString("</ul>\n")
	if data.Empty {
		b.WriteString("<p class=\"summary-empty\">Your cart is empty.</p>\n")
	}
	fmt.Fprintf(b, "<p id=\"paymentTotal\" class=\"payment-total\">Total due: %s</p>\n", templ.EscapeString(data.Total))
	b.WriteString("</section>\n")
}

func writeForm(b *strings.Builder, data PageData) {
	b.WriteString("<section class=\"payment-form\" aria-label=\"Customer details\">\n")
	b.WriteString("<h2>Customer details</h2>\n")
	b.WriteString("<form method=\"post\" action=\"/checkout\">\n")
	fmt.Fprintf(b, "<label>Name <input type=\"text\" name=\"name\" value=\"%s\"/></label>\n",
		templ.EscapeString(data.Name))
	fmt.Fprintf(b, "<label>Email <input type=\"text\" name=\"email\" value=\"%s\"/></label>\n",
		templ.EscapeString(data.Email))
	b.WriteString("<button type=\"submit\">Confirm payment</button>\n")
	b.WriteString("</form>\n")
	b.WriteString("<a class=\"back-link\" href=\"/\">Back to the shop</a>\n")
	b.WriteString("</section>\n")
}
