// Package helpers contains formatting utilities shared by the view
// templates.
package helpers

import "fmt"

// Price renders an amount the way the shop displays money.
func Price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// StockLabel renders the shelf count shown under each product.
func StockLabel(n int) string {
	return fmt.Sprintf("Stock: %d", n)
}
