package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/slot"
	"github.com/tiendago/storefront/internal/shop/testutil"
)

func get(t *testing.T, client *http.Client, url string) ([]byte, int) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body, resp.StatusCode
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) ([]byte, int) {
	t.Helper()

	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body, resp.StatusCode
}

func TestStorefrontRendersCatalogAndEmptyCart(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := get(t, client, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, len(catalog.Seed()), doc.Find("#catalog article.product").Length())
	require.Equal(t, 0, doc.Find("#cartItems li").Length())
	require.Equal(t, "Total: $0.00", doc.Find("#cartTotal").Text())
}

func TestAddToCartFlow(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := postForm(t, client, ts.URL+"/cart/add/0", nil)
	require.Equal(t, http.StatusOK, status, "redirect should land back on the storefront")

	doc := testutil.ParseHTML(t, body)
	items := doc.Find("#cartItems li")
	require.Equal(t, 1, items.Length())
	require.Equal(t, "Wireless Headphones", items.Find(".cart-item-name").Text())
	require.Equal(t, "Total: $59.99", doc.Find("#cartTotal").Text())
	require.Equal(t, "Stock: 4", doc.Find("#catalog article.product").First().Find(".product-stock").Text())
}

func TestOutOfStockShowsNotice(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithCatalog(catalog.Catalog{
		{Name: "Scarce", Price: 5, Stock: 1},
	}))
	client := testutil.NewClient(t)

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	body, _ := postForm(t, client, ts.URL+"/cart/add/0", nil)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Product out of stock.", doc.Find(".notice-error").Text())

	// The notice is one-shot: the next render is clean.
	body, _ = get(t, client, ts.URL+"/")
	doc = testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find(".notice-error").Length())
}

func TestRemoveIsSilentNoopOnFullShelf(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := postForm(t, client, ts.URL+"/cart/remove/0", nil)
	require.Equal(t, http.StatusOK, status)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find(".notice-error").Length())
	require.Equal(t, 0, doc.Find("#cartItems li").Length())
}

func TestBadIndexShowsNoticeInsteadOfCrashing(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := postForm(t, client, ts.URL+"/cart/add/99", nil)
	require.Equal(t, http.StatusOK, status)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "That product does not exist.", doc.Find(".notice-error").Text())

	body, status = postForm(t, client, ts.URL+"/cart/add/notanumber", nil)
	require.Equal(t, http.StatusOK, status)
	doc = testutil.ParseHTML(t, body)
	require.Equal(t, "That product does not exist.", doc.Find(".notice-error").Text())
}

func TestEmptyCartClearsEverything(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	_, _ = postForm(t, client, ts.URL+"/cart/add/1", nil)
	body, _ := postForm(t, client, ts.URL+"/cart/empty", nil)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find("#cartItems li").Length())
	require.Equal(t, "Total: $0.00", doc.Find("#cartTotal").Text())
}

func TestLoadFailureRendersNoticeOverEmptyCatalog(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithLoadError(catalog.ErrLoadFailed))
	client := testutil.NewClient(t)

	body, status := get(t, client, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find("#catalog article.product").Length())
	require.Contains(t, doc.Find(".notice-error").Text(), "Could not load the product catalog")
}

func TestCheckoutPageShowsSummarySnapshot(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	body, status := get(t, client, ts.URL+"/checkout")
	require.Equal(t, http.StatusOK, status)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find("#paymentSummary li").Length())
	require.Equal(t, "Total due: $59.99", doc.Find("#paymentTotal").Text())
}

func TestCheckoutValidationKeepsPaymentOpen(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	body, status := postForm(t, client, ts.URL+"/checkout", url.Values{
		"name":  {"Ada Lovelace"},
		"email": {""},
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Please fill in every field.", doc.Find(".notice-error").Text())
	require.Equal(t, 1, doc.Find("#paymentSummary li").Length(), "payment view stays open")

	name, _ := doc.Find("input[name='name']").Attr("value")
	require.Equal(t, "Ada Lovelace", name)

	// Nothing was persisted and the cart still holds the product.
	_, ok, err := ts.Slots.Get(context.Background(), slot.CustomerData)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, ts.Cart.Snapshot().CartSize())
}

func TestCheckoutConfirmCompletesAndResets(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	body, status := postForm(t, client, ts.URL+"/checkout", url.Values{
		"name":  {"Ada Lovelace"},
		"email": {"ada@example.com"},
	})
	require.Equal(t, http.StatusOK, status, "redirect lands on the storefront")

	doc := testutil.ParseHTML(t, body)
	banner := doc.Find(".notice-success")
	require.Equal(t, 1, banner.Length())
	require.Contains(t, banner.Text(), "Thank you for your purchase")
	dismiss, ok := banner.Attr("data-autodismiss-ms")
	require.True(t, ok, "success notice auto-dismisses")
	require.Equal(t, "3000", dismiss)

	require.Equal(t, 0, doc.Find("#cartItems li").Length())
	require.Zero(t, ts.Cart.Snapshot().CartSize())

	payload, ok, err := ts.Slots.Get(context.Background(), slot.CustomerData)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, strings.Contains(string(payload), "ada@example.com"))
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := get(t, client, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", string(body))

	_, _ = postForm(t, client, ts.URL+"/cart/add/0", nil)
	body, status = get(t, client, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "storefront_cart_transitions_total")
}

func TestStaticAssetsServed(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := testutil.NewClient(t)

	body, status := get(t, client, ts.URL+"/static/products.json")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "Wireless Headphones")

	_, status = get(t, client, ts.URL+"/static/css/styles.css")
	require.Equal(t, http.StatusOK, status)
}
