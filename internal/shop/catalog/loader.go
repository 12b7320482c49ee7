package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DocumentPath is the fixed location of the catalog document, relative to
// the source base URL.
const DocumentPath = "/static/products.json"

// ErrLoadFailed covers every way fetching the catalog document can fail:
// transport errors, non-2xx responses and undecodable bodies all collapse
// into it so the caller shows a single notice and keeps an empty catalog.
var ErrLoadFailed = errors.New("catalog load failed")

// Source yields the initial catalog. Implementations return a wrapped
// ErrLoadFailed on any failure and never a partially populated catalog.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// HTTPClient matches the subset of http.Client used by Loader.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Loader fetches the catalog document over HTTP.
type Loader struct {
	base   *url.URL
	client HTTPClient
}

// NewLoader constructs a Loader rooted at baseURL.
func NewLoader(baseURL string, client HTTPClient) (*Loader, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("catalog: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{base: parsed, client: client}, nil
}

// Load performs one GET of the catalog document and decodes the body
// verbatim as a JSON array of Product.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	target := l.base.JoinPath(DocumentPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrLoadFailed, resp.StatusCode)
	}

	var products Catalog
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", ErrLoadFailed, err)
	}
	return products, nil
}
