package contracts

import (
	"context"
	"io"
	"time"
)

// LetterStorage stores generated letter documents and hands out links.
type LetterStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
