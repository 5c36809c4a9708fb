package usecase

import (
	"math"
	"time"

	"suburb-analyzer-service/internal/core/domain"
)

const (
	// Количество исходных записей, попадающих в ответ как выборка.
	samplePropertiesLimit = 5

	// Эталонный размер "семейного" жилья: 4 спальни соответствуют индексу 100.
	fullFamilyBedrooms = 4.0

	listingDateLayout = "2006-01-02"
)

// BuildSuburbAnalysis - чистая функция, превращающая выдачу объявлений
// в скоркарту. Зависит только от аргументов: текущая дата передается
// снаружи, чтобы расчет дней на рынке был воспроизводимым.
func BuildSuburbAnalysis(results []domain.ListingRecord, now time.Time) (*domain.SuburbAnalysis, error) {
	if len(results) == 0 {
		return nil, domain.ErrNoListings
	}

	// --- 1. Средняя цена ---
	// Берем только записи, где цена вообще есть. Явный ноль - валидная цена.
	var priceSum float64
	priceCount := 0
	for _, r := range results {
		if r.Price != nil {
			priceSum += *r.Price
			priceCount++
		}
	}
	avgPrice := 0
	if priceCount > 0 {
		avgPrice = int(math.Round(priceSum / float64(priceCount)))
	}

	// --- 2. Среднее время на рынке (days on market) ---
	// Непарсящиеся и отсутствующие даты молча выпадают из выборки.
	today := truncateToDate(now)
	domSum := 0
	domCount := 0
	for _, r := range results {
		if r.ListingDate == nil {
			continue
		}
		listedAt, err := time.ParseInLocation(listingDateLayout, *r.ListingDate, time.UTC)
		if err != nil {
			continue
		}
		domSum += int(today.Sub(listedAt).Hours() / 24)
		domCount++
	}
	avgDOM := 0
	if domCount > 0 {
		avgDOM = int(math.Round(float64(domSum) / float64(domCount)))
	}

	// Около 20 дней на рынке - индекс близок к 100, дальше минус 1.5 пункта в день.
	riskScore := int(clamp(100-(float64(avgDOM)-20)*1.5, 0, 100))

	// --- 3. Среднее число спален ---
	// В отличие от цены, ноль спален в расчет не берем.
	var bedsSum float64
	bedsCount := 0
	for _, r := range results {
		if r.Bedrooms != nil && *r.Bedrooms > 0 {
			bedsSum += *r.Bedrooms
			bedsCount++
		}
	}
	avgBeds := 0.0
	if bedsCount > 0 {
		avgBeds = math.Round(bedsSum/float64(bedsCount)*10) / 10
	}

	growthScore := int(clamp(avgBeds/fullFamilyBedrooms*100, 0, 100))

	sampleSize := len(results)
	if sampleSize > samplePropertiesLimit {
		sampleSize = samplePropertiesLimit
	}

	return &domain.SuburbAnalysis{
		Summary: domain.SummaryStats{
			TotalListings:   len(results),
			AvgSalePrice:    avgPrice,
			AvgDaysOnMarket: avgDOM,
			AvgBedrooms:     avgBeds,
		},
		Scorecard: domain.Scorecard{
			LiquidityRisk: domain.ScoreIndex{
				Label:       "Liquidity Risk Score",
				Value:       riskScore,
				Explanation: "Measures how quickly properties are selling (Days on Market). Higher score means lower risk and faster sale times.",
			},
			FamilyGrowthPotential: domain.ScoreIndex{
				Label:       "Family Growth Potential",
				Value:       growthScore,
				Explanation: "A heuristic based on average property size (bedrooms), indicating stable, long-term family demand.",
			},
		},
		SampleProperties: results[:sampleSize],
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// truncateToDate обнуляет время, оставляя только календарную дату в UTC.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
