package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	s := NewStorage()

	assert.Nil(t, s.Get("key"))

	s.Set("key", []byte("value"), time.Minute)
	assert.Equal(t, []byte("value"), s.Get("key"))

	s.Set("gone", []byte("value"), -time.Minute)
	assert.Nil(t, s.Get("gone"))
}
