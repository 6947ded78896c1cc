package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, KindForbidden.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, KindUpstream.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
}

func TestKindOfWrappedError(t *testing.T) {
	base := Wrap(KindUpstream, "generation failed", errors.New("connection refused"))
	wrapped := fmt.Errorf("send chat: %w", base)

	assert.Equal(t, KindUpstream, KindOf(wrapped))
	assert.Equal(t, "generation failed", MessageOf(wrapped))
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("something broke")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal server error", MessageOf(err))
}
