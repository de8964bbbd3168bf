package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore implements AvatarStore on the local filesystem. References are
// URL paths under /uploads, served statically by the HTTP server.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (d *DiskStore) Save(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error) {
	dir := filepath.Join(d.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(r, size)); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/uploads/" + folder + "/" + filename, nil
}

func (d *DiskStore) Delete(ctx context.Context, ref string) error {
	rel := strings.TrimPrefix(ref, "/uploads/")
	// refuse anything that would escape the base dir
	if strings.Contains(rel, "..") {
		return fmt.Errorf("invalid avatar reference: %s", ref)
	}
	err := os.Remove(filepath.Join(d.baseDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
