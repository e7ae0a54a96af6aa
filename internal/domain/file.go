package domain

import "context"

// FileStore abstracts raw file byte storage for uploads (cover images,
// profile images). The initial implementation writes to a local directory;
// this interface allows swapping to a blob column or S3 later.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
