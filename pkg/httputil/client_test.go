package httputil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(3 * time.Second)
	assert.Equal(t, 3*time.Second, c.Timeout)

	c = NewHTTPClient(0)
	assert.Equal(t, defaultTimeout, c.Timeout)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(304))
	assert.False(t, IsSuccess(500))
}

func TestDecodeJSON(t *testing.T) {
	var got []map[string]int
	require.NoError(t, DecodeJSON(strings.NewReader(`[{"id":1},{"id":2}]`+"\n"), &got))
	assert.Len(t, got, 2)

	err := DecodeJSON(strings.NewReader(""), &got)
	assert.EqualError(t, err, "body must not be empty")

	err = DecodeJSON(strings.NewReader(`[] []`), &got)
	assert.EqualError(t, err, "body must only contain a single JSON value")

	err = DecodeJSON(strings.NewReader(`<html>`), &got)
	assert.Error(t, err)
}
