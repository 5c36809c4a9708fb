package usecase

import (
	"context"
	"testing"

	"suburb-analyzer-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher реализует port.ListingsFetcherPort для тестов.
type stubFetcher struct {
	payload *domain.ListingsPayload
	err     error

	gotSuburb string
}

func (s *stubFetcher) FetchListings(ctx context.Context, suburb string) (*domain.ListingsPayload, error) {
	s.gotSuburb = suburb
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func TestAnalyzeSuburbUseCase_Success(t *testing.T) {
	fetcher := &stubFetcher{
		payload: &domain.ListingsPayload{
			Results: []domain.ListingRecord{
				{Price: fptr(750000), Bedrooms: fptr(4)},
			},
		},
	}
	uc := NewAnalyzeSuburbUseCase(fetcher)

	analysis, err := uc.Execute(context.Background(), "Belmore")
	require.NoError(t, err)

	assert.Equal(t, "Belmore", fetcher.gotSuburb)
	assert.Equal(t, 1, analysis.Summary.TotalListings)
	assert.Equal(t, 750000, analysis.Summary.AvgSalePrice)
}

func TestAnalyzeSuburbUseCase_EmptyResultsSignalNoListings(t *testing.T) {
	uc := NewAnalyzeSuburbUseCase(&stubFetcher{payload: &domain.ListingsPayload{}})

	_, err := uc.Execute(context.Background(), "Belmore")
	assert.ErrorIs(t, err, domain.ErrNoListings)
}

func TestAnalyzeSuburbUseCase_FetchErrorsKeepTheirType(t *testing.T) {
	// Обертка use case не должна прятать тип ошибки от REST-слоя.
	upstreamErr := &domain.UpstreamHTTPError{StatusCode: 401}
	uc := NewAnalyzeSuburbUseCase(&stubFetcher{err: upstreamErr})

	_, err := uc.Execute(context.Background(), "Belmore")
	require.Error(t, err)

	var gotErr *domain.UpstreamHTTPError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, 401, gotErr.StatusCode)

	uc = NewAnalyzeSuburbUseCase(&stubFetcher{err: domain.ErrUpstreamUnreachable})
	_, err = uc.Execute(context.Background(), "Belmore")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnreachable)
}
