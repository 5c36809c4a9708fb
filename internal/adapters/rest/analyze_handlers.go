package rest

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"suburb-analyzer-service/internal/contextkeys"
	"suburb-analyzer-service/internal/core/domain"
	"suburb-analyzer-service/internal/core/port"
	"suburb-analyzer-service/internal/core/port/usecases"
)

//go:embed web/index.html
var indexPage []byte

type AnalyzeHandlers struct {
	analyzeUC usecases.AnalyzeSuburbUseCase
}

func NewAnalyzeHandlers(analyzeUC usecases.AnalyzeSuburbUseCase) *AnalyzeHandlers {
	return &AnalyzeHandlers{
		analyzeUC: analyzeUC,
	}
}

// Home обрабатывает GET / и отдает одностраничный UI.
func (h *AnalyzeHandlers) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}

// Test обрабатывает GET /test - простая проверка, что сервис жив.
func (h *AnalyzeHandlers) Test(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Test endpoint working",
		"debug":   "This is a test",
	})
}

// AnalyzeSuburb обрабатывает GET /api/analyze?suburb=<name>
func (h *AnalyzeHandlers) AnalyzeSuburb(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AnalyzeSuburb"})

	suburb := r.URL.Query().Get("suburb")
	if suburb == "" {
		logger.Warn("Suburb query parameter is missing", nil)
		WriteJSONError(w, http.StatusBadRequest, "Suburb name is required.")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"suburb": suburb})
	handlerLogger.Info("Processing analyze request", nil)

	analysis, err := h.analyzeUC.Execute(r.Context(), suburb)
	if err != nil {
		h.writeAnalyzeError(w, handlerLogger, suburb, err)
		return
	}

	handlerLogger.Info("Analysis completed", port.Fields{
		"total_listings": analysis.Summary.TotalListings,
	})

	RespondWithJSON(w, http.StatusOK, AnalyzeSuburbResponse{
		Suburb:   suburb,
		Analysis: toAnalysisResponse(analysis),
	})
}

// writeAnalyzeError - единственное место, где доменные ошибки превращаются
// в HTTP-статусы и сообщения для клиента.
func (h *AnalyzeHandlers) writeAnalyzeError(w http.ResponseWriter, logger port.LoggerPort, suburb string, err error) {
	// Пустая выдача - 404 с подсказкой попробовать другой район.
	if errors.Is(err, domain.ErrNoListings) {
		logger.Warn("No property data in upstream response", nil)
		WriteJSONError(w, http.StatusNotFound,
			fmt.Sprintf("No property data found for %s. Please try a different suburb.", suburb))
		return
	}

	// HTTP-ошибку апстрима пробрасываем с тем же статусом.
	var upstreamErr *domain.UpstreamHTTPError
	if errors.As(err, &upstreamErr) {
		logger.Warn("Upstream returned HTTP error", port.Fields{"status": upstreamErr.StatusCode})

		var message string
		switch upstreamErr.StatusCode {
		case http.StatusUnauthorized:
			message = "API Authentication Failed. Please check the Bearer token."
		case http.StatusNotFound:
			message = fmt.Sprintf("Suburb '%s' not found or no data available.", suburb)
		default:
			message = fmt.Sprintf("An API error occurred: HTTP %d", upstreamErr.StatusCode)
		}
		WriteJSONError(w, upstreamErr.StatusCode, message)
		return
	}

	if errors.Is(err, domain.ErrUpstreamUnreachable) {
		logger.Error("Upstream is unreachable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "Could not connect to the external Microburbs API.")
		return
	}

	// Любая другая ошибка - это 500
	logger.Error("Analyze use case failed with an unexpected error", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, "An unexpected server error occurred during analysis.")
}
