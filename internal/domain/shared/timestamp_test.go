package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageTime(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	in := time.Date(2024, 6, 3, 10, 15, 30, 987654321, paris)

	got := StorageTime(in)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 987000000, got.Nanosecond())
	assert.True(t, got.Equal(time.UnixMilli(in.UnixMilli())))
}
