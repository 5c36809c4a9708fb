package usecase

import (
	"context"
	"fmt"
	"time"

	"suburb-analyzer-service/internal/contextkeys"
	"suburb-analyzer-service/internal/core/domain"
	"suburb-analyzer-service/internal/core/port"
)

// AnalyzeSuburbUseCase инкапсулирует основной сценарий сервиса:
// получить объявления по району и превратить их в скоркарту.
type AnalyzeSuburbUseCase struct {
	listingsFetcher port.ListingsFetcherPort
}

// NewAnalyzeSuburbUseCase создает новый экземпляр use case
func NewAnalyzeSuburbUseCase(fetcher port.ListingsFetcherPort) *AnalyzeSuburbUseCase {
	return &AnalyzeSuburbUseCase{
		listingsFetcher: fetcher,
	}
}

// Execute выполняет основную логику use case
func (uc *AnalyzeSuburbUseCase) Execute(ctx context.Context, suburb string) (*domain.SuburbAnalysis, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{
		"use_case": "AnalyzeSuburb",
		"suburb":   suburb,
	})

	ucLogger.Debug("Fetching listings from upstream", nil)

	payload, fetchErr := uc.listingsFetcher.FetchListings(ctx, suburb)
	if fetchErr != nil {
		ucLogger.Error("Failed to fetch listings", fetchErr, nil)
		return nil, fmt.Errorf("failed to fetch listings for %q: %w", suburb, fetchErr)
	}

	ucLogger.Debug("Listings fetched", port.Fields{"total": len(payload.Results)})

	analysis, err := BuildSuburbAnalysis(payload.Results, time.Now())
	if err != nil {
		// Пустая выдача - это не сбой, а полноценный результат "данных нет".
		ucLogger.Warn("No listings in upstream response", nil)
		return nil, err
	}

	ucLogger.Info("Suburb analysis built", port.Fields{
		"total_listings": analysis.Summary.TotalListings,
		"avg_sale_price": analysis.Summary.AvgSalePrice,
		"liquidity_risk": analysis.Scorecard.LiquidityRisk.Value,
		"growth_score":   analysis.Scorecard.FamilyGrowthPotential.Value,
	})

	return analysis, nil
}
