package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type stage func(batches []*model.ProductBatch) []*model.ProductBatch

// Filter returns the batches visible under state, in catalog order.
// It is a pure function: the input slice is never modified.
func Filter(
	catalog []*model.ProductBatch,
	state model.FilterState,
	favorites model.Favorites,
) []*model.ProductBatch {
	out := slices.Clip(catalog)
	for _, apply := range []stage{
		byViewMode(state.ViewMode, favorites),
		byRanges(state.PriceRange, state.MOQRange),
		byCountries(state.SelectedCountries),
		bySearchTerm(state.SearchTerm),
	} {
		out = apply(out)
	}

	if out == nil {
		return []*model.ProductBatch{}
	}
	return out
}

func byViewMode(mode model.ViewMode, favorites model.Favorites) stage {
	return func(batches []*model.ProductBatch) []*model.ProductBatch {
		if mode != model.ViewModeFavorites {
			return batches
		}
		set := favorites.Set()
		return lo.Filter(batches, func(b *model.ProductBatch, _ int) bool {
			_, ok := set[b.ID]
			return ok
		})
	}
}

func byRanges(price model.Range[float64], moq model.Range[int64]) stage {
	return func(batches []*model.ProductBatch) []*model.ProductBatch {
		return lo.Filter(batches, func(b *model.ProductBatch, _ int) bool {
			return price.Contains(b.UnitPriceUSD) && moq.Contains(b.MOQ)
		})
	}
}

func byCountries(countries []string) stage {
	return func(batches []*model.ProductBatch) []*model.ProductBatch {
		if len(countries) == 0 {
			return batches
		}
		return lo.Filter(batches, func(b *model.ProductBatch, _ int) bool {
			return slices.Contains(countries, b.Country)
		})
	}
}

func bySearchTerm(term string) stage {
	return func(batches []*model.ProductBatch) []*model.ProductBatch {
		needle := strings.ToLower(strings.TrimSpace(term))
		if needle == "" {
			return batches
		}
		return lo.Filter(batches, func(b *model.ProductBatch, _ int) bool {
			return strings.Contains(strings.ToLower(b.Title), needle) ||
				strings.Contains(strings.ToLower(b.Description), needle)
		})
	}
}
