package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	got, err := ParseBaseURL(" http://localhost:8080/api/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", got)

	for _, raw := range []string{"", "localhost:8080", "ftp://example.com", "file:///etc/passwd", "http://"} {
		_, err := ParseBaseURL(raw)
		assert.Error(t, err, raw)
	}
}

func TestDo_ReturnsNon2xxWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "k", r.Header.Get("X-Api-Key"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		assert.Equal(t, "ann", in["username"])

		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), http.MethodPost, "auth/login", map[string]string{"X-Api-Key": "k"}, map[string]string{"username": "ann"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.JSONEq(t, `{"message":"bad credentials"}`, string(resp.Body))
}

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"user_id": 3}`))
	}))
	defer srv.Close()

	c := New(time.Second)

	var out struct {
		UserID int64 `json:"user_id"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, srv.URL+"/ok", nil, nil, &out))
	assert.Equal(t, int64(3), out.UserID)

	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL+"/missing", nil, nil, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "nope", httpErr.Body)
}

func TestDo_RelativePathWithoutBaseURL(t *testing.T) {
	_, err := New(0).Do(context.Background(), http.MethodGet, "/users", nil, nil)
	assert.Error(t, err)
}
