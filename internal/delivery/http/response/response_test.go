package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-marketplace-backend/internal/delivery/http/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEnvelopeCarriesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(response.RequestIDKey, "req-42") })
	r.GET("/ok", func(c *gin.Context) { response.Success(c, http.StatusOK, "done", gin.H{"id": "R1"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "done", body.Message)
	assert.Equal(t, "req-42", body.RequestID)
	assert.Nil(t, body.Error)
}

func TestAbortStopsChain(t *testing.T) {
	reached := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		response.Abort(c, http.StatusForbidden, "nope", nil)
	})
	r.GET("/guarded", func(c *gin.Context) { reached = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "nope", body.Message)
	assert.Empty(t, body.RequestID)
}
