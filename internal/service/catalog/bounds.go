package catalog

import (
	"math"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// DeriveBounds returns the ceiling of the largest price and MOQ in the catalog.
func DeriveBounds(catalog []*model.ProductBatch) (model.Bounds, error) {
	if len(catalog) == 0 {
		return model.Bounds{}, model.ErrEmptyCatalog
	}

	maxPrice := lo.MaxBy(catalog, func(a, b *model.ProductBatch) bool {
		return a.UnitPriceUSD > b.UnitPriceUSD
	}).UnitPriceUSD
	maxMOQ := lo.MaxBy(catalog, func(a, b *model.ProductBatch) bool {
		return a.MOQ > b.MOQ
	}).MOQ

	return model.Bounds{
		MaxPrice: math.Ceil(maxPrice),
		MaxMOQ:   maxMOQ,
	}, nil
}

// Reclamp fits ranges computed against prev into next. A range whose max sat at
// the previous bound keeps following the bound so a full range stays full.
func Reclamp(state model.FilterState, prev, next model.Bounds) model.FilterState {
	out := state.Clone()
	out.PriceRange = reclampRange(state.PriceRange, prev.MaxPrice, next.MaxPrice)
	out.MOQRange = reclampRange(state.MOQRange, prev.MaxMOQ, next.MaxMOQ)
	return out
}

func reclampRange[T float64 | int64](r model.Range[T], prevMax, nextMax T) model.Range[T] {
	if r.Max == prevMax || r.Max > nextMax {
		r.Max = nextMax
	}
	r.Min = max(0, min(r.Min, nextMax))
	return r
}
