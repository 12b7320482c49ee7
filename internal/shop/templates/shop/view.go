package shop

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tiendago/storefront/internal/shop/templates/partials"
)

// Index renders the full storefront page.
func Index(data PageData) templ.Component {
	return partials.Layout(data.Title, data.Notice, content(data))
}

func content(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeCatalog(&b, data.Products)
		writeCart(&b, data.Cart)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeCatalog(b *strings.Builder, products []ProductView) {
	b.WriteString("<section id=\"catalog\" class=\"catalog\" aria-label=\"Products\">\n")
	for _, p := range products {
		b.WriteString("<article class=\"product\">\n")
		fmt.Fprintf(b, "<img src=\"/static/%s\" alt=\"%s\"/>\n",
			templ.EscapeString(p.Image), templ.EscapeString(p.Name))
		fmt.Fprintf(b, "<p class=\"product-name\">%s</p>\n", templ.EscapeString(p.Name))
		fmt.Fprintf(b, "<p class=\"product-price\">%s</p>\n", templ.EscapeString(p.Price))
		fmt.Fprintf(b, "<p class=\"product-stock\">%s</p>\n", templ.EscapeString(p.StockLabel))
		fmt.Fprintf(b, "<form method=\"post\" action=\"/cart/add/%d\">", p.Index)
		b.WriteString("<button type=\"submit\">Add to cart</button></form>\n")
		b.WriteString("</article>\n")
	}
	b.WriteString("</section>\n")
}

func writeCart(b *strings.Builder, cart CartView) {
	b.WriteString("<aside id=\"cart\" class=\"cart\" aria-label=\"Shopping cart\">\n")
	b.WriteString("<h2>Your cart</h2>\n<ul id=\"cartItems\">\n")
	for _, item := range cart.Items {
		b.WriteString("<li class=\"cart-item\">")
		fmt.Fprintf(b, "<span class=\"cart-item-name\">%s</span> <span class=\"cart-item-price\">%s</span>",
			templ.EscapeString(item.Name), templ.EscapeString(item.Price))
		fmt.Fprintf(b, "<form method=\"post\" action=\"/cart/remove/%d\">", item.Index)
		b.WriteString("<button type=\"submit\">Remove</button></form>")
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(b, "<p id=\"cartTotal\" class=\"cart-total\">Total: %s</p>\n", templ.EscapeString(cart.Total))
	b.WriteString("<form method=\"post\" action=\"/cart/empty\"><button type=\"submit\">Empty cart</button></form>\n")
	b.WriteString("<a class=\"checkout-link\" href=\"/checkout\">Checkout</a>\n")
	b.WriteString("</aside>\n")
}
