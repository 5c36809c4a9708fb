package rest

import (
	"encoding/json"

	"suburb-analyzer-service/internal/core/domain"
)

// --- DTO для ответа /api/analyze ---

type SummaryResponse struct {
	TotalListings   int     `json:"total_listings"`
	AvgSalePrice    int     `json:"avg_sale_price"`
	AvgDaysOnMarket int     `json:"avg_days_on_market"`
	AvgBedrooms     float64 `json:"avg_bedrooms"`
}

type ScoreIndexResponse struct {
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Explanation string `json:"explanation"`
}

type ScorecardResponse struct {
	LiquidityRisk         ScoreIndexResponse `json:"liquidity_risk"`
	FamilyGrowthPotential ScoreIndexResponse `json:"family_growth_potential"`
}

type AnalysisResponse struct {
	Summary   SummaryResponse   `json:"summary"`
	Scorecard ScorecardResponse `json:"scorecard"`

	// Первые записи выдачи апстрима как есть, без пересборки полей.
	RawProperties []json.RawMessage `json:"raw_properties"`
}

type AnalyzeSuburbResponse struct {
	Suburb   string           `json:"suburb"`
	Analysis AnalysisResponse `json:"analysis"`
}

// toAnalysisResponse маппит доменную скоркарту в DTO ответа.
func toAnalysisResponse(analysis *domain.SuburbAnalysis) AnalysisResponse {
	raw := make([]json.RawMessage, len(analysis.SampleProperties))
	for i, p := range analysis.SampleProperties {
		raw[i] = p.Raw
	}

	return AnalysisResponse{
		Summary: SummaryResponse{
			TotalListings:   analysis.Summary.TotalListings,
			AvgSalePrice:    analysis.Summary.AvgSalePrice,
			AvgDaysOnMarket: analysis.Summary.AvgDaysOnMarket,
			AvgBedrooms:     analysis.Summary.AvgBedrooms,
		},
		Scorecard: ScorecardResponse{
			LiquidityRisk:         toScoreIndexResponse(analysis.Scorecard.LiquidityRisk),
			FamilyGrowthPotential: toScoreIndexResponse(analysis.Scorecard.FamilyGrowthPotential),
		},
		RawProperties: raw,
	}
}

func toScoreIndexResponse(idx domain.ScoreIndex) ScoreIndexResponse {
	return ScoreIndexResponse{
		Label:       idx.Label,
		Value:       idx.Value,
		Explanation: idx.Explanation,
	}
}
