package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := Newf(InsufficientStock, "item %s: need %d, have %d", "OIL-5W30", 4, 1)
	assert.Equal(t, InsufficientStock, KindOf(err))

	wrapped := fmt.Errorf("consume part: %w", err)
	assert.Equal(t, InsufficientStock, KindOf(wrapped))

	assert.Equal(t, Unavailable, KindOf(errors.New("connection refused")))
}

func TestIs(t *testing.T) {
	err := New(Duplicate, errors.New("plate already registered"))
	assert.True(t, Is(err, Duplicate))
	assert.False(t, Is(err, NotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := New(NotFound, cause)
	assert.ErrorIs(t, err, cause)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, NotFound, e.Kind)
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{InvalidInput, http.StatusBadRequest},
		{InvalidTransition, http.StatusBadRequest},
		{InsufficientStock, http.StatusBadRequest},
		{Duplicate, http.StatusConflict},
		{NotFound, http.StatusNotFound},
		{Unavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(Newf(tc.kind, "boom")), string(tc.kind))
	}

	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(errors.New("raw")))
}
