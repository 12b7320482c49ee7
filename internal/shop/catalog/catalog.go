// Package catalog defines the product list and the sources that populate it.
package catalog

// MaxStock is the shelf ceiling for every product. A product at full stock
// is on the shelf only; anything below MaxStock occupies the cart.
const MaxStock = 5

// Product is a single catalog entry. The fields mirror the products.json
// document verbatim; sources do not range-check them.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Stock int     `json:"stock"`
}

// InCart reports whether the product occupies the cart. Membership is
// derived from the stock counter, not stored separately.
func (p Product) InCart() bool {
	return p.Stock < MaxStock
}

// Catalog is the ordered product list. Position is the stable identity
// used by cart operations; there is no separate product id.
type Catalog []Product

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Total sums the price of every product currently in the cart.
func (c Catalog) Total() float64 {
	var total float64
	for _, p := range c {
		if p.InCart() {
			total += p.Price
		}
	}
	return total
}

// CartSize returns the number of products currently in the cart.
func (c Catalog) CartSize() int {
	n := 0
	for _, p := range c {
		if p.InCart() {
			n++
		}
	}
	return n
}
