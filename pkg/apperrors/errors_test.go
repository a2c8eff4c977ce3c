package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	wrapped := fmt.Errorf("saving profile: %w", NotFound("missing"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthorized("no session"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestDetailsOf(t *testing.T) {
	err := ValidationWithDetails("invalid ids", map[string]any{"invalid_ids": []string{"x"}})
	details, ok := DetailsOf(err).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, details["invalid_ids"])

	assert.Nil(t, DetailsOf(Validation("plain")))
	assert.Nil(t, DetailsOf(errors.New("unclassified")))
}
