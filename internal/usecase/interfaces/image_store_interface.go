package interfaces

import (
	"context"
	"io"
)

// IImageStore abstracts the object storage used for product images.
//
// Upload stores the object under the given key and returns a public URL to
// persist on the product record.
type IImageStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
