package usecase

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"suburb-analyzer-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func listedDaysAgo(now time.Time, days int) *string {
	return sptr(now.AddDate(0, 0, -days).Format("2006-01-02"))
}

func TestBuildSuburbAnalysis_EmptyResults(t *testing.T) {
	_, err := BuildSuburbAnalysis(nil, time.Now())
	assert.ErrorIs(t, err, domain.ErrNoListings)

	_, err = BuildSuburbAnalysis([]domain.ListingRecord{}, time.Now())
	assert.ErrorIs(t, err, domain.ErrNoListings)
}

func TestBuildSuburbAnalysis_WorkedExample(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	records := []domain.ListingRecord{
		{Price: fptr(500000), Bedrooms: fptr(3), ListingDate: listedDaysAgo(now, 10)},
		{Price: fptr(600000), Bedrooms: fptr(5), ListingDate: listedDaysAgo(now, 30)},
	}

	analysis, err := BuildSuburbAnalysis(records, now)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Summary.TotalListings)
	assert.Equal(t, 550000, analysis.Summary.AvgSalePrice)
	assert.Equal(t, 20, analysis.Summary.AvgDaysOnMarket)
	assert.Equal(t, 4.0, analysis.Summary.AvgBedrooms)
	assert.Equal(t, 100, analysis.Scorecard.LiquidityRisk.Value)
	assert.Equal(t, 100, analysis.Scorecard.FamilyGrowthPotential.Value)
}

func TestBuildSuburbAnalysis_AllValuesMissing(t *testing.T) {
	records := []domain.ListingRecord{
		{},
		{ListingDate: sptr("not-a-date")},
		{Bedrooms: fptr(0)}, // ноль спален в среднее не входит
	}

	analysis, err := BuildSuburbAnalysis(records, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 3, analysis.Summary.TotalListings)
	assert.Equal(t, 0, analysis.Summary.AvgSalePrice)
	assert.Equal(t, 0, analysis.Summary.AvgDaysOnMarket)
	assert.Equal(t, 0.0, analysis.Summary.AvgBedrooms)

	// При avg_dom = 0 формула дает clamp(130) = 100, при avg_beds = 0 индекс роста 0.
	assert.Equal(t, 100, analysis.Scorecard.LiquidityRisk.Value)
	assert.Equal(t, 0, analysis.Scorecard.FamilyGrowthPotential.Value)
}

func TestBuildSuburbAnalysis_ZeroPriceIsCounted(t *testing.T) {
	records := []domain.ListingRecord{
		{Price: fptr(0)},
		{Price: fptr(100000)},
		{Price: nil},
	}

	analysis, err := BuildSuburbAnalysis(records, time.Now())
	require.NoError(t, err)

	// Явный ноль входит в среднее, отсутствующая цена - нет.
	assert.Equal(t, 50000, analysis.Summary.AvgSalePrice)
}

func TestBuildSuburbAnalysis_ScoresStayWithinBounds(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		records    []domain.ListingRecord
		wantRisk   int
		wantGrowth int
	}{
		{
			name: "stale listings push risk to zero",
			records: []domain.ListingRecord{
				{ListingDate: listedDaysAgo(now, 500)},
			},
			wantRisk:   0,
			wantGrowth: 0,
		},
		{
			name: "fresh listings cap risk at 100",
			records: []domain.ListingRecord{
				{ListingDate: listedDaysAgo(now, 0)},
			},
			wantRisk:   100,
			wantGrowth: 0,
		},
		{
			name: "oversized homes cap growth at 100",
			records: []domain.ListingRecord{
				{Bedrooms: fptr(9)},
			},
			wantRisk:   100,
			wantGrowth: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analysis, err := BuildSuburbAnalysis(tc.records, now)
			require.NoError(t, err)

			assert.Equal(t, tc.wantRisk, analysis.Scorecard.LiquidityRisk.Value)
			assert.Equal(t, tc.wantGrowth, analysis.Scorecard.FamilyGrowthPotential.Value)

			assert.GreaterOrEqual(t, analysis.Scorecard.LiquidityRisk.Value, 0)
			assert.LessOrEqual(t, analysis.Scorecard.LiquidityRisk.Value, 100)
			assert.GreaterOrEqual(t, analysis.Scorecard.FamilyGrowthPotential.Value, 0)
			assert.LessOrEqual(t, analysis.Scorecard.FamilyGrowthPotential.Value, 100)
		})
	}
}

func TestBuildSuburbAnalysis_RiskScoreDropsLinearly(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	// avg_dom = 60 -> 100 - (60-20)*1.5 = 40
	records := []domain.ListingRecord{
		{ListingDate: listedDaysAgo(now, 60)},
	}

	analysis, err := BuildSuburbAnalysis(records, now)
	require.NoError(t, err)
	assert.Equal(t, 40, analysis.Scorecard.LiquidityRisk.Value)
}

func TestBuildSuburbAnalysis_AvgBedroomsRoundedToOneDecimal(t *testing.T) {
	// (2 + 3 + 3) / 3 = 2.666... -> 2.7, growth = trunc(2.7/4*100) = 67
	records := []domain.ListingRecord{
		{Bedrooms: fptr(2)},
		{Bedrooms: fptr(3)},
		{Bedrooms: fptr(3)},
	}

	analysis, err := BuildSuburbAnalysis(records, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 2.7, analysis.Summary.AvgBedrooms)
	assert.Equal(t, 67, analysis.Scorecard.FamilyGrowthPotential.Value)
}

func TestBuildSuburbAnalysis_SampleIsFirstFiveRecordsVerbatim(t *testing.T) {
	var records []domain.ListingRecord
	for i := 0; i < 8; i++ {
		records = append(records, domain.ListingRecord{
			Raw: json.RawMessage(fmt.Sprintf(`{"id":%d,"extra":"untouched"}`, i)),
		})
	}

	analysis, err := BuildSuburbAnalysis(records, time.Now())
	require.NoError(t, err)

	require.Len(t, analysis.SampleProperties, 5)
	for i, p := range analysis.SampleProperties {
		assert.Equal(t, records[i].Raw, p.Raw)
	}
}

func TestBuildSuburbAnalysis_SampleShorterThanLimit(t *testing.T) {
	records := []domain.ListingRecord{
		{Raw: json.RawMessage(`{"id":1}`)},
		{Raw: json.RawMessage(`{"id":2}`)},
	}

	analysis, err := BuildSuburbAnalysis(records, time.Now())
	require.NoError(t, err)
	assert.Len(t, analysis.SampleProperties, 2)
}

func TestBuildSuburbAnalysis_LabelsAndExplanations(t *testing.T) {
	analysis, err := BuildSuburbAnalysis([]domain.ListingRecord{{}}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Liquidity Risk Score", analysis.Scorecard.LiquidityRisk.Label)
	assert.Equal(t, "Family Growth Potential", analysis.Scorecard.FamilyGrowthPotential.Label)
	assert.NotEmpty(t, analysis.Scorecard.LiquidityRisk.Explanation)
	assert.NotEmpty(t, analysis.Scorecard.FamilyGrowthPotential.Explanation)
}
