package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
)

// DocumentSource loads the catalog from a document inside a file system,
// typically the embedded asset tree. It is the default source when no
// remote catalog URL is configured.
type DocumentSource struct {
	fsys fs.FS
	name string
}

// NewDocumentSource constructs a source reading name from fsys.
func NewDocumentSource(fsys fs.FS, name string) *DocumentSource {
	return &DocumentSource{fsys: fsys, name: name}
}

// Load reads and decodes the document.
func (s *DocumentSource) Load(ctx context.Context) (Catalog, error) {
	payload, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: read document: %v", ErrLoadFailed, err)
	}
	var products Catalog
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", ErrLoadFailed, err)
	}
	return products, nil
}
