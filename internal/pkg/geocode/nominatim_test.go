package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asistencia-cl/asistencia-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string, timeout time.Duration) *Client {
	return NewClient(config.GeocodeConfig{
		BaseURL:   serverURL,
		UserAgent: "asistencia_test",
		Timeout:   timeout,
	})
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Av. Providencia 1234, Santiago", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "asistencia_test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-33.4311927","lon":"-70.6181022","display_name":"Avenida Providencia, Santiago, Chile"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	result, err := client.Search(context.Background(), "Av. Providencia 1234, Santiago")

	require.NoError(t, err)
	assert.InDelta(t, -33.4311927, result.Latitude, 1e-9)
	assert.InDelta(t, -70.6181022, result.Longitude, 1e-9)
	assert.Equal(t, "Avenida Providencia, Santiago, Chile", result.DisplayName)
}

func TestSearch_NoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Search(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, ErrNoResult)
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Search(context.Background(), "Santiago")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 50*time.Millisecond)
	_, err := client.Search(context.Background(), "Santiago")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_MalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"not-a-number","lon":"-70.6","display_name":"x"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Search(context.Background(), "Santiago")

	assert.ErrorIs(t, err, ErrUnavailable)
}
