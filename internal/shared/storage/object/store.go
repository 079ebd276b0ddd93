package object

import "context"

// ObjectStore defines the contract for saving binary objects under a caller-chosen key.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, data []byte) error
}
