// Package storage holds the avatar storage collaborators. Callers hand over
// a binary buffer plus a folder hint and get back a durable reference; the
// same reference is used for deletion.
package storage

import (
	"context"
	"io"
)

type AvatarStore interface {
	Save(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// MaxAvatarSize is checked before anything is persisted.
const MaxAvatarSize = 2 * 1024 * 1024 // 2MB
