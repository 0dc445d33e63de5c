package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		assert.Equal(t, "/crud", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	require.NotNil(t, c.Client)

	resp, err := c.R().SetBody(map[string]string{"texto": "Maria Lopez"}).Post("/crud")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, time.Second, c.GetClient().Timeout)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient("http://a.local", time.Second)
	b := NewHTTPClient("http://b.local", time.Second)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a.local", a.BaseURL)
	assert.Equal(t, "http://b.local", b.BaseURL)
}
