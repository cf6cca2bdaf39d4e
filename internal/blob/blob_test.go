package blob

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	root := t.TempDir()

	s := New(root, "http://localhost:8080/media/")

	url, err := s.Save("", "photo.PNG", strings.NewReader("content"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/media/"+DefaultBucket+"/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	name := url[strings.LastIndex(url, "/")+1:]
	b, err := os.ReadFile(filepath.Join(root, DefaultBucket, name))
	require.NoError(t, err)
	assert.Equal(t, "content", string(b))
}

func TestStore_Save_bucket(t *testing.T) {
	root := t.TempDir()

	s := New(root, "http://localhost:8080/media")

	url, err := s.Save("avatars", "me.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Contains(t, url, "/avatars/")

	entries, err := os.ReadDir(filepath.Join(root, "avatars"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStore_Save_rejectsTraversal(t *testing.T) {
	root := t.TempDir()

	s := New(root, "http://localhost:8080/media")

	for _, bucket := range []string{"../outside", "..", ".", "a/b", `a\b`, "/abs"} {
		_, err := s.Save(bucket, "evil.sh", strings.NewReader("x"))
		require.True(t, errors.Is(err, ErrInvalidBucket), bucket)
	}

	// nothing may appear outside the root
	entries, err := os.ReadDir(filepath.Dir(root))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "outside", e.Name())
	}

	entries, err = os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Root(t *testing.T) {
	assert.Equal(t, "media", New("media", "http://x").Root())
}
