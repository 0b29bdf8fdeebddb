package model

import "github.com/shopspring/decimal"

// CatalogAnalytics aggregates the catalog for the supplier dashboard.
type CatalogAnalytics struct {
	// PotentialRevenue is the sum of unit price times available quantity.
	PotentialRevenue decimal.Decimal
	TotalSKUs        int
	AvgUnitPrice     decimal.Decimal
	// QualityGrades counts graded batches per score. All four scores are present.
	QualityGrades map[QualityScore]int
	Ungraded      int
}
