// Package shop renders the storefront page: the catalog grid and the cart
// list, both pure projections of the catalog state.
package shop

import (
	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/flash"
	"github.com/tiendago/storefront/internal/shop/templates/helpers"
)

// PageData is the storefront SSR payload.
type PageData struct {
	Title    string
	Notice   *flash.Notice
	Products []ProductView
	Cart     CartView
}

// ProductView is one catalog grid entry.
type ProductView struct {
	Index      int
	Name       string
	Price      string
	Image      string
	StockLabel string
	OutOfStock bool
}

// CartItemView is one cart list entry.
type CartItemView struct {
	Index int
	Name  string
	Price string
}

// CartView is the cart list payload.
type CartView struct {
	Items []CartItemView
	Total string
	Empty bool
}

// BuildPageData projects the catalog into the storefront payload. The cart
// list filters to products whose stock sits below the ceiling; the total
// sums their prices.
func BuildPageData(cat catalog.Catalog, notice *flash.Notice) PageData {
	products := make([]ProductView, 0, len(cat))
	cartView := CartView{}
	for i, p := range cat {
		products = append(products, ProductView{
			Index:      i,
			Name:       p.Name,
			Price:      helpers.Price(p.Price),
			Image:      p.Image,
			StockLabel: helpers.StockLabel(p.Stock),
			OutOfStock: p.Stock <= 0,
		})
		if p.InCart() {
			cartView.Items = append(cartView.Items, CartItemView{
				Index: i,
				Name:  p.Name,
				Price: helpers.Price(p.Price),
			})
		}
	}
	cartView.Empty = len(cartView.Items) == 0
	cartView.Total = helpers.Price(cat.Total())

	return PageData{
		Title:    "Storefront",
		Notice:   notice,
		Products: products,
		Cart:     cartView,
	}
}
