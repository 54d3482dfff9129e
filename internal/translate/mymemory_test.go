package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMyMemory(baseURL string) *MyMemoryClient {
	c := NewMyMemoryClient("km", "vi", "ops@example.com")
	c.baseURL = baseURL
	return c
}

func TestMyMemoryTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "សួស្តី", r.URL.Query().Get("q"))
		assert.Equal(t, "km|vi", r.URL.Query().Get("langpair"))
		assert.Equal(t, "ops@example.com", r.URL.Query().Get("de"))

		w.Write([]byte(`{"responseData":{"translatedText":" Xin chào "},"responseStatus":200}`))
	}))
	defer srv.Close()

	out, err := newTestMyMemory(srv.URL).Translate(context.Background(), "សួស្តី")
	require.NoError(t, err)
	assert.Equal(t, "Xin chào", out)
}

func TestMyMemoryTranslateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR"}`))
	}))
	defer srv.Close()

	_, err := newTestMyMemory(srv.URL).Translate(context.Background(), "សួស្តី")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID LANGUAGE PAIR")
}

func TestMyMemoryTranslateQuotaWarning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"MYMEMORY WARNING: YOU USED ALL AVAILABLE FREE TRANSLATIONS FOR TODAY"},"responseStatus":200}`))
	}))
	defer srv.Close()

	_, err := newTestMyMemory(srv.URL).Translate(context.Background(), "សួស្តី")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translation")
}

func TestMyMemoryTranslateEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"  "},"responseStatus":200}`))
	}))
	defer srv.Close()

	_, err := newTestMyMemory(srv.URL).Translate(context.Background(), "សួស្តី")
	require.Error(t, err)
}

func TestMyMemoryTranslateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestMyMemory(srv.URL).Translate(context.Background(), "សួស្តី")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
