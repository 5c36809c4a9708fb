package microburbs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"suburb-analyzer-service/internal/contextkeys"
	"suburb-analyzer-service/internal/core/domain"
	"suburb-analyzer-service/internal/core/port"
)

// FetchListings выполняет один GET-запрос к Microburbs API и возвращает
// распарсенную выдачу объявлений по району.
// Без ретраев и кеширования: каждый вызов независим.
func (a *MicroburbsFetcherAdapter) FetchListings(ctx context.Context, suburb string) (*domain.ListingsPayload, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	fetchLogger := logger.WithFields(port.Fields{"component": "MicroburbsFetcherAdapter"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("microburbs adapter: failed to create request: %w", err)
	}

	query := url.Values{}
	query.Set("suburb", suburb)
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Authorization", "Bearer "+a.authToken)
	req.Header.Set("Content-Type", "application/json")

	fetchLogger.Info("Making request to fetch listings", port.Fields{
		"url":    req.URL.String(),
		"suburb": suburb,
	})

	resp, err := a.httpClient.Do(req)
	if err != nil {
		// Ответа не было вообще: обрыв соединения, DNS, таймаут.
		fetchLogger.Error("Upstream request failed", err, port.Fields{"suburb": suburb})
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchLogger.Warn("Upstream returned HTTP error", port.Fields{
			"suburb": suburb,
			"status": resp.StatusCode,
		})
		return nil, &domain.UpstreamHTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("microburbs adapter: failed to read response body: %w", err)
	}

	var dto listingsResponse
	if err := json.Unmarshal(body, &dto); err != nil {
		fetchLogger.Error("Failed to decode upstream response", err, port.Fields{"suburb": suburb})
		return nil, fmt.Errorf("microburbs adapter: failed to decode response: %w", err)
	}

	payload := toDomainPayload(dto)
	fetchLogger.Debug("Listings response decoded", port.Fields{
		"suburb": suburb,
		"total":  len(payload.Results),
	})

	return payload, nil
}
