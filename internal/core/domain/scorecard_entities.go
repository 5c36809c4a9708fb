package domain

// SummaryStats - сводная статистика по выдаче объявлений.
type SummaryStats struct {
	TotalListings   int
	AvgSalePrice    int
	AvgDaysOnMarket int
	AvgBedrooms     float64
}

// ScoreIndex - один эвристический индекс со значением в диапазоне [0, 100].
type ScoreIndex struct {
	Label       string
	Value       int
	Explanation string
}

// Scorecard объединяет оба индекса.
type Scorecard struct {
	LiquidityRisk         ScoreIndex
	FamilyGrowthPotential ScoreIndex
}

// SuburbAnalysis - итоговый результат анализа: статистика, индексы
// и первые пять исходных объявлений как репрезентативная выборка.
type SuburbAnalysis struct {
	Summary          SummaryStats
	Scorecard        Scorecard
	SampleProperties []ListingRecord
}
