package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// Analytics aggregates batches. Money values are rounded to cents.
func Analytics(batches []*model.ProductBatch) model.CatalogAnalytics {
	out := model.CatalogAnalytics{
		PotentialRevenue: decimal.Zero,
		TotalSKUs:        len(batches),
		AvgUnitPrice:     decimal.Zero,
		QualityGrades: map[model.QualityScore]int{
			model.QualityA: 0,
			model.QualityB: 0,
			model.QualityC: 0,
			model.QualityD: 0,
		},
	}

	priceSum := decimal.Zero
	for _, b := range batches {
		price := decimal.NewFromFloat(b.UnitPriceUSD)
		priceSum = priceSum.Add(price)
		out.PotentialRevenue = out.PotentialRevenue.Add(price.Mul(decimal.NewFromInt(b.QtyAvailable)))

		if b.MLQualityScore != nil && b.MLQualityScore.Valid() {
			out.QualityGrades[*b.MLQualityScore]++
		} else {
			out.Ungraded++
		}
	}

	out.PotentialRevenue = out.PotentialRevenue.Round(2)
	if len(batches) > 0 {
		out.AvgUnitPrice = priceSum.Div(decimal.NewFromInt(int64(len(batches)))).Round(2)
	}
	return out
}
