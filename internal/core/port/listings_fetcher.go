package port

import (
	"context"
	"suburb-analyzer-service/internal/core/domain"
)

// ListingsFetcherPort - контракт для получения объявлений по названию района.
// Реализация отвечает за все взаимодействие с внешним API.
type ListingsFetcherPort interface {
	// FetchListings выполняет один запрос к апстриму.
	// Возможные ошибки: *domain.UpstreamHTTPError, domain.ErrUpstreamUnreachable,
	// либо любая другая ошибка, которую ядро считает внутренней.
	FetchListings(ctx context.Context, suburb string) (*domain.ListingsPayload, error)
}
