// Package ui implements the storefront page handlers. Handlers translate
// transition failures into flash notices; no error escapes past the
// handler that triggered it.
package ui

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/tiendago/storefront/internal/shop/cart"
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
	paymenttpl "github.com/tiendago/storefront/internal/shop/templates/payment"
	shoptpl "github.com/tiendago/storefront/internal/shop/templates/shop"
)

// Dependencies collects the services required by the UI handlers.
type Dependencies struct {
	Cart     *cart.Store
	Checkout *checkout.Service
	Flash    *flash.Manager
	Logger   *slog.Logger

	// LoadError carries a catalog load failure from startup; the
	// storefront page surfaces it as a notice over the empty catalog.
	LoadError error
}

// Handlers exposes the storefront HTTP handlers.
type Handlers struct {
	cart     *cart.Store
	checkout *checkout.Service
	flash    *flash.Manager
	logger   *slog.Logger
	loadErr  error
}

// NewHandlers wires the handler set.
func NewHandlers(deps Dependencies) *Handlers {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		cart:     deps.Cart,
		checkout: deps.Checkout,
		flash:    deps.Flash,
		logger:   logger,
		loadErr:  deps.LoadError,
	}
}

// Storefront renders the catalog grid and the cart list.
func (h *Handlers) Storefront(w http.ResponseWriter, r *http.Request) {
	notice := h.popNotice(w, r)
	if notice == nil && h.loadErr != nil {
		notice = &flash.Notice{
			Kind:    flash.KindError,
			Message: "Could not load the product catalog. Please try again later.",
		}
	}
	data := shoptpl.BuildPageData(h.cart.Snapshot(), notice)
	templ.Handler(shoptpl.Index(data)).ServeHTTP(w, r)
}

// CartAdd handles the add-to-cart action for a catalog position.
func (h *Handlers) CartAdd(w http.ResponseWriter, r *http.Request) {
	index, ok := h.index(w, r, "add")
	if !ok {
		return
	}
	if err := h.cart.Add(r.Context(), index); err != nil {
		h.fail(w, r, "add", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CartRemove handles the remove-from-cart action for a catalog position.
// Removing a product that is not in the cart is a silent no-op.
func (h *Handlers) CartRemove(w http.ResponseWriter, r *http.Request) {
	index, ok := h.index(w, r, "remove")
	if !ok {
		return
	}
	if err := h.cart.Remove(r.Context(), index); err != nil {
		h.fail(w, r, "remove", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CartEmpty returns every product to the shelf.
func (h *Handlers) CartEmpty(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Empty(r.Context()); err != nil {
		h.fail(w, r, "empty", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CheckoutPage opens the payment view over a summary snapshot. The
// snapshot is computed here and not refreshed by later cart changes.
func (h *Handlers) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	notice := h.popNotice(w, r)
	sum := checkout.BuildSummary(h.cart.Snapshot())
	data := paymenttpl.BuildPageData(sum, notice, "", "")
	templ.Handler(paymenttpl.Index(data)).ServeHTTP(w, r)
}

// CheckoutConfirm validates the customer form and completes the order.
func (h *Handlers) CheckoutConfirm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPaymentWithNotice(w, r, "", "", "Could not read the form. Please try again.")
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")

	if _, err := h.checkout.Confirm(r.Context(), name, email); err != nil {
		if errors.Is(err, checkout.ErrValidation) {
			h.renderPaymentWithNotice(w, r, name, email, "Please fill in every field.")
			return
		}
		h.logger.Error("checkout failed", slog.Any("error", err))
		h.setNotice(w, flash.Notice{
			Kind:    flash.KindError,
			Message: "Could not save your payment details. Please try again.",
		})
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	h.setNotice(w, flash.Notice{
		Kind:    flash.KindSuccess,
		Message: "Payment details saved. Thank you for your purchase!",
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderPaymentWithNotice keeps the customer on the payment view, echoing
// the submitted fields back into the form.
func (h *Handlers) renderPaymentWithNotice(w http.ResponseWriter, r *http.Request, name, email, message string) {
	notice := &flash.Notice{Kind: flash.KindError, Message: message}
	sum := checkout.BuildSummary(h.cart.Snapshot())
	data := paymenttpl.BuildPageData(sum, notice, name, email)
	templ.Handler(paymenttpl.Index(data), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request, op string) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.fail(w, r, op, cart.ErrBadIndex)
		return 0, false
	}
	return index, true
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Warn("cart transition failed", slog.String("op", op), slog.Any("error", err))
	if notice := noticeFor(err); notice != "" {
		h.setNotice(w, flash.Notice{Kind: flash.KindError, Message: notice})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) setNotice(w http.ResponseWriter, notice flash.Notice) {
	if h.flash != nil {
		h.flash.Set(w, notice)
	}
}

func (h *Handlers) popNotice(w http.ResponseWriter, r *http.Request) *flash.Notice {
	if h.flash == nil {
		return nil
	}
	if notice, ok := h.flash.Pop(w, r); ok {
		return &notice
	}
	return nil
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, cart.ErrOutOfStock):
		return "Product out of stock."
	case errors.Is(err, cart.ErrBadIndex):
		return "That product does not exist."
	default:
		return "Something went wrong updating the cart. Please try again."
	}
}
