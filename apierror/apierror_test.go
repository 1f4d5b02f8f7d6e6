package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Status(), tt.err.Message)
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Conflict("dup"))
	assert.Equal(t, KindConflict, As(wrapped).Kind)

	plain := errors.New("plain")
	got := As(plain)
	assert.Equal(t, KindInternal, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func respond(t *testing.T, err error, key string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	RespondAs(c, err, key)

	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondAs_MessageKey(t *testing.T) {
	w, body := respond(t, Validation("Password must be at least 6 characters"), "message")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Password must be at least 6 characters", body.Message)
	assert.Empty(t, body.Error)
}

func TestRespondAs_ErrorKey(t *testing.T) {
	w, body := respond(t, NotFound("Product not found"), "error")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body.Error)
	assert.Empty(t, body.Message)
}

func TestRespondAs_HidesInternalDetail(t *testing.T) {
	w, body := respond(t, errors.New("firestore: deadline exceeded"), "message")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, InternalMessage, body.Message)
	assert.NotContains(t, w.Body.String(), "firestore")
}
