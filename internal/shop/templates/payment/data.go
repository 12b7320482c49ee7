// Package payment renders the checkout page over the summary snapshot
// computed when the payment view opened.
package payment

import (
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
	"github.com/tiendago/storefront/internal/shop/templates/helpers"
)

// PageData is the checkout SSR payload.
type PageData struct {
	Title  string
	Notice *flash.Notice
	Lines  []LineView
	Total  string
	Empty  bool

	// Name and Email echo submitted values back into the form when
	// validation fails, so the customer only fixes the missing field.
	Name  string
	Email string
}

// LineView is one payment-summary entry.
type LineView struct {
	Name  string
	Price string
}

// BuildPageData projects the summary snapshot into the checkout payload.
func BuildPageData(sum checkout.Summary, notice *flash.Notice, name, email string) PageData {
	lines := make([]LineView, 0, len(sum.Lines))
	for _, line := range sum.Lines {
		lines = append(lines, LineView{Name: line.Name, Price: helpers.Price(line.Price)})
	}
	return PageData{
		Title:  "Checkout",
		Notice: notice,
		Lines:  lines,
		Total:  helpers.Price(sum.Total),
		Empty:  len(lines) == 0,
		Name:   name,
		Email:  email,
	}
}
