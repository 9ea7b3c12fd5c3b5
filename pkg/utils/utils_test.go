package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)

	other, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestFormatConfidence(t *testing.T) {
	u := New()

	assert.Equal(t, "97.3%", u.FormatConfidence(0.9731))
	assert.Equal(t, "100.0%", u.FormatConfidence(1))
	assert.Equal(t, "0.0%", u.FormatConfidence(0))
}
