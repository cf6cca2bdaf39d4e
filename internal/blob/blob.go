// Package blob stores uploaded media and issues public urls for it.
package blob

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBucket is where post media lands unless a bucket is given.
const DefaultBucket = "post-media"

// ErrInvalidBucket is returned when a bucket name is not a single clean path
// element.
var ErrInvalidBucket = errors.New("invalid bucket name")

// Store keeps blobs on the local filesystem, one directory per bucket, and
// builds public urls against the base the files are served from.
type Store struct {
	root      string
	publicURL string
}

// New ...
func New(root, publicURL string) *Store {
	return &Store{
		root:      root,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Save writes the blob into the bucket under a generated name and returns its
// public url. The name carries the original extension so content type can be
// sniffed from the path.
func (s *Store) Save(bucket, filename string, r io.Reader) (string, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	// bucket comes from the client, it must stay a single path element under
	// the root
	if bucket != filepath.Base(bucket) || bucket == "." || bucket == ".." || strings.ContainsAny(bucket, `/\`) {
		return "", ErrInvalidBucket
	}

	name := fmt.Sprintf("%s-%d%s", randomName(), time.Now().UnixMilli(), strings.ToLower(filepath.Ext(filename)))

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name()) // nolint
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, path.Join(bucket, name)), nil
}

// Root returns the directory the store writes under, for serving it.
func (s *Store) Root() string {
	return s.root
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomName() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = nameAlphabet[rand.Intn(len(nameAlphabet))]
	}

	return string(b)
}
