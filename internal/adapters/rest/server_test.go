package rest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger_adapter "suburb-analyzer-service/internal/adapters/logger"
	"suburb-analyzer-service/internal/configs"
	"suburb-analyzer-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(uc *stubAnalyzeUC) *http.Server {
	cfg := &configs.AppConfig{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	return NewServer(cfg, uc, logger)
}

// Запрос проходит весь стек middleware и роутинг, а не только хендлер.
func TestServer_AnalyzeRouteThroughRouter(t *testing.T) {
	srv := newTestServer(&stubAnalyzeUC{
		analysis: &domain.SuburbAnalysis{
			Summary: domain.SummaryStats{TotalListings: 1},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?suburb=Belmore", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"suburb":"Belmore"`)
}

func TestServer_UnknownRouteReturns404(t *testing.T) {
	srv := newTestServer(&stubAnalyzeUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(&stubAnalyzeUC{})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
