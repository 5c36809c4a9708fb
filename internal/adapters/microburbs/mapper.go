package microburbs

import (
	"suburb-analyzer-service/internal/core/domain"
)

// toDomainPayload преобразует DTO ответа апстрима в доменную структуру.
func toDomainPayload(dto listingsResponse) *domain.ListingsPayload {
	payload := &domain.ListingsPayload{
		Results: make([]domain.ListingRecord, len(dto.Results)),
	}

	for i, l := range dto.Results {
		payload.Results[i] = domain.ListingRecord{
			Raw:         l.raw,
			Price:       l.price,
			ListingDate: l.listingDate,
			Bedrooms:    l.bedrooms,
		}
	}

	return payload
}
