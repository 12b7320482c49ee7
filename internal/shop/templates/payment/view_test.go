package payment

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
)

func renderIndex(t *testing.T, data PageData) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Index(data).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return doc
}

func TestBuildPageDataFormatsLines(t *testing.T) {
	t.Parallel()

	sum := checkout.BuildSummary(catalog.Catalog{
		{Name: "Gadget", Price: 9.99, Stock: 4},
		{Name: "Shelf", Price: 10, Stock: 5},
	})

	data := BuildPageData(sum, nil, "Ada", "ada@example.com")
	require.Len(t, data.Lines, 1)
	require.Equal(t, "$9.99", data.Lines[0].Price)
	require.Equal(t, "$9.99", data.Total)
	require.Equal(t, "Ada", data.Name)
	require.False(t, data.Empty)
}

func TestIndexRendersSummary(t *testing.T) {
	t.Parallel()

	sum := checkout.BuildSummary(catalog.Catalog{
		{Name: "Gadget", Price: 9.99, Stock: 4},
		{Name: "Widget", Price: 20, Stock: 3},
	})
	doc := renderIndex(t, BuildPageData(sum, nil, "", ""))

	items := doc.Find("#paymentSummary li")
	require.Equal(t, 2, items.Length())
	require.Equal(t, "Total due: $29.99", doc.Find("#paymentTotal").Text())
	require.Equal(t, 0, doc.Find(".summary-empty").Length())
}

func TestIndexRendersEmptyCartHint(t *testing.T) {
	t.Parallel()

	doc := renderIndex(t, BuildPageData(checkout.Summary{}, nil, "", ""))

	require.Equal(t, 0, doc.Find("#paymentSummary li").Length())
	require.Equal(t, 1, doc.Find(".summary-empty").Length())
	require.Equal(t, "Total due: $0.00", doc.Find("#paymentTotal").Text())
}

func TestIndexEchoesSubmittedFields(t *testing.T) {
	t.Parallel()

	notice := &flash.Notice{Kind: flash.KindError, Message: "Please fill in every field."}
	doc := renderIndex(t, BuildPageData(checkout.Summary{}, notice, "Ada", ""))

	name, ok := doc.Find("input[name='name']").Attr("value")
	require.True(t, ok)
	require.Equal(t, "Ada", name)

	email, ok := doc.Find("input[name='email']").Attr("value")
	require.True(t, ok)
	require.Empty(t, email)

	require.Equal(t, "Please fill in every field.", doc.Find(".notice-error").Text())
}
