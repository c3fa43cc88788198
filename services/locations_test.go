package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	. "chat-client/services"
)

func TestLocationsService_Countries_FromBackend(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/locations/countries", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"countries": []string{"France", "Germany"}},
		})
	}))
	defer server.Close()

	svc := NewLocationsService(NewAPIClient(server.URL, 5*time.Second, nil), nil)
	req.Equal([]string{"France", "Germany"}, svc.Countries(context.Background()))
}

func TestLocationsService_Countries_FallbackOn404(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": "not implemented"})
	}))
	defer server.Close()

	svc := NewLocationsService(NewAPIClient(server.URL, 5*time.Second, nil), nil)
	req.Equal(FallbackCountries(), svc.Countries(context.Background()))
}

func TestLocationsService_Countries_FallbackOffline(t *testing.T) {
	svc := NewLocationsService(nil, nil)
	require.Equal(t, []string{"India", "UK", "USA"}, svc.Countries(context.Background()))
}

func TestLocationsService_States(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/locations/states", r.URL.Path)
		req.Equal("UK", r.URL.Query().Get("country"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"country": "UK", "states": []string{"England", "Scotland"}},
		})
	}))
	defer server.Close()

	svc := NewLocationsService(NewAPIClient(server.URL, 5*time.Second, nil), nil)
	req.Equal([]string{"England", "Scotland"}, svc.States(context.Background(), "UK"))
}

func TestLocationsService_States_FallbackKnownAndUnknown(t *testing.T) {
	req := require.New(t)
	svc := NewLocationsService(nil, nil)

	req.Contains(svc.States(context.Background(), "UK"), "Wales")
	req.Empty(svc.States(context.Background(), "Atlantis"))
}
