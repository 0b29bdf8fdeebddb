package http

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/wizard"
)

type batchDTO struct {
	ID             string            `json:"id"`
	ProductID      string            `json:"productId"`
	SupplierID     string            `json:"supplierId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Country        string            `json:"country"`
	UnitPriceUSD   float64           `json:"unitPriceUSD"`
	MOQ            int64             `json:"moq"`
	QtyAvailable   int64             `json:"qtyAvailable"`
	LeadTimeDays   int64             `json:"leadTimeDays"`
	Materials      []string          `json:"materials"`
	Specs          map[string]string `json:"specs"`
	Images         []string          `json:"images"`
	VideoURL       string            `json:"videoUrl,omitempty"`
	Status         string            `json:"status"`
	MLQualityScore *string           `json:"mlQualityScore,omitempty"`
	ListedAt       time.Time         `json:"listedAt"`
}

type rangeDTO[T float64 | int64] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

type filterStateDTO struct {
	SearchTerm        string            `json:"searchTerm"`
	PriceRange        rangeDTO[float64] `json:"priceRange"`
	MOQRange          rangeDTO[int64]   `json:"moqRange"`
	SelectedCountries []string          `json:"selectedCountries"`
	ViewMode          string            `json:"viewMode"`
}

type boundsDTO struct {
	MaxPrice float64 `json:"maxPrice"`
	MaxMOQ   int64   `json:"maxMoq"`
	// Fallback is set while the catalog is empty.
	Fallback bool `json:"fallback"`
}

type listBatchesResponse struct {
	Batches []batchDTO     `json:"batches"`
	Total   int            `json:"total"`
	Filters filterStateDTO `json:"filters"`
	Bounds  boundsDTO      `json:"bounds"`
	Busy    bool           `json:"busy"`
}

type updateFiltersRequest struct {
	SearchTerm    *string            `json:"searchTerm"`
	PriceRange    *rangeDTO[float64] `json:"priceRange"`
	MOQRange      *rangeDTO[int64]   `json:"moqRange"`
	Countries     *[]string          `json:"selectedCountries"`
	ToggleCountry *string            `json:"toggleCountry"`
	ViewMode      *string            `json:"viewMode"`
}

type filtersResponse struct {
	Filters filterStateDTO `json:"filters"`
	Busy    bool           `json:"busy"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Seq      uint64         `json:"seq"`
	Filters  filterStateDTO `json:"filters"`
	Stale    bool           `json:"stale"`
	Fallback bool           `json:"fallback"`
}

type favoritesResponse struct {
	Favorites  []string `json:"favorites"`
	IsFavorite *bool    `json:"isFavorite,omitempty"`
}

type settingsDTO struct {
	Theme        string `json:"theme"`
	SoundEnabled bool   `json:"soundEnabled"`
}

type updateSettingsRequest struct {
	Theme        *string `json:"theme"`
	SoundEnabled *bool   `json:"soundEnabled"`
}

type landedCostRequest struct {
	Quantity    int64  `json:"quantity"`
	Destination string `json:"destination"`
}

type landedCostResponse struct {
	BatchID     string          `json:"batchId"`
	Quantity    int64           `json:"quantity"`
	Destination string          `json:"destination"`
	ProductCost decimal.Decimal `json:"productCost"`
	Shipping    decimal.Decimal `json:"shipping"`
	Duties      decimal.Decimal `json:"duties"`
	Insurance   decimal.Decimal `json:"insurance"`
	Total       decimal.Decimal `json:"total"`
	PerUnit     decimal.Decimal `json:"perUnit"`
}

type analyticsResponse struct {
	PotentialRevenue decimal.Decimal `json:"potentialRevenue"`
	TotalSKUs        int             `json:"totalSkus"`
	AvgUnitPrice     decimal.Decimal `json:"avgUnitPrice"`
	QualityGrades    map[string]int  `json:"qualityDistribution"`
	Ungraded         int             `json:"ungraded"`
}

type supplierDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Country            string  `json:"country"`
	VerificationStatus string  `json:"verificationStatus"`
	Rating             float64 `json:"rating"`
	MemberSince        string  `json:"memberSince"`
	Bio                string  `json:"bio"`
}

type suggestionsDTO struct {
	SuggestedTitle       string   `json:"suggestedTitle"`
	SuggestedDescription string   `json:"suggestedDescription"`
	SuggestedKeywords    []string `json:"suggestedKeywords"`
	LocationInsight      string   `json:"locationInsight"`
}

type analysisDTO struct {
	QualityScore string   `json:"qualityScore"`
	Issues       []string `json:"issues"`
}

type draftDTO struct {
	Step         int             `json:"step"`
	StepName     string          `json:"stepName"`
	CanAdvance   bool            `json:"canAdvance"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Country      string          `json:"country"`
	MOQ          int64           `json:"moq"`
	UnitPriceUSD float64         `json:"unitPriceUSD"`
	QtyAvailable int64           `json:"qtyAvailable"`
	ImageType    string          `json:"imageType,omitempty"`
	ImageBytes   int             `json:"imageBytes,omitempty"`
	Suggestions  *suggestionsDTO `json:"suggestions,omitempty"`
	Analysis     *analysisDTO    `json:"analysis,omitempty"`
}

type draftDetailsRequest struct {
	Title        *string  `json:"title"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Country      *string  `json:"country"`
	MOQ          *int64   `json:"moq"`
	UnitPriceUSD *float64 `json:"unitPriceUSD"`
	QtyAvailable *int64   `json:"qtyAvailable"`
}

type applySuggestionRequest struct {
	Field string `json:"field"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func batchToDTO(b *model.ProductBatch) batchDTO {
	out := batchDTO{
		ID:           b.ID,
		ProductID:    b.ProductID,
		SupplierID:   b.SupplierID,
		Title:        b.Title,
		Description:  b.Description,
		Category:     b.Category,
		Country:      b.Country,
		UnitPriceUSD: b.UnitPriceUSD,
		MOQ:          b.MOQ,
		QtyAvailable: b.QtyAvailable,
		LeadTimeDays: b.LeadTimeDays,
		Materials:    lo.Ternary(b.Materials == nil, []string{}, b.Materials),
		Specs:        lo.Ternary(b.Specs == nil, map[string]string{}, b.Specs),
		Images:       lo.Ternary(b.Images == nil, []string{}, b.Images),
		VideoURL:     b.VideoURL,
		Status:       string(b.Status),
		ListedAt:     b.ListedAt,
	}
	if b.MLQualityScore != nil {
		out.MLQualityScore = lo.ToPtr(string(*b.MLQualityScore))
	}
	return out
}

func batchesToDTO(batches []*model.ProductBatch) []batchDTO {
	return lo.Map(batches, func(b *model.ProductBatch, _ int) batchDTO { return batchToDTO(b) })
}

func filterStateToDTO(s model.FilterState) filterStateDTO {
	return filterStateDTO{
		SearchTerm:        s.SearchTerm,
		PriceRange:        rangeDTO[float64]{Min: s.PriceRange.Min, Max: s.PriceRange.Max},
		MOQRange:          rangeDTO[int64]{Min: s.MOQRange.Min, Max: s.MOQRange.Max},
		SelectedCountries: lo.Ternary(s.SelectedCountries == nil, []string{}, s.SelectedCountries),
		ViewMode:          string(s.ViewMode),
	}
}

func boundsToDTO(b model.Bounds, fallback bool) boundsDTO {
	return boundsDTO{MaxPrice: b.MaxPrice, MaxMOQ: b.MaxMOQ, Fallback: fallback}
}

func preferencesToDTO(p model.Preferences) settingsDTO {
	return settingsDTO{Theme: string(p.Theme), SoundEnabled: p.SoundEnabled}
}

func landedCostToDTO(c model.LandedCost) landedCostResponse {
	return landedCostResponse{
		BatchID:     c.BatchID,
		Quantity:    c.Quantity,
		Destination: string(c.Destination),
		ProductCost: c.ProductCost,
		Shipping:    c.Shipping,
		Duties:      c.Duties,
		Insurance:   c.Insurance,
		Total:       c.Total,
		PerUnit:     c.PerUnit,
	}
}

func analyticsToDTO(a model.CatalogAnalytics) analyticsResponse {
	return analyticsResponse{
		PotentialRevenue: a.PotentialRevenue,
		TotalSKUs:        a.TotalSKUs,
		AvgUnitPrice:     a.AvgUnitPrice,
		QualityGrades: lo.MapKeys(a.QualityGrades, func(_ int, q model.QualityScore) string {
			return string(q)
		}),
		Ungraded: a.Ungraded,
	}
}

func supplierToDTO(s model.Supplier) supplierDTO {
	return supplierDTO{
		ID:                 s.ID,
		Name:               s.Name,
		Country:            s.Country,
		VerificationStatus: string(s.VerificationStatus),
		Rating:             s.Rating,
		MemberSince:        s.MemberSince.Format(time.DateOnly),
		Bio:                s.Bio,
	}
}

func suggestionsToDTO(s model.ListingSuggestions) suggestionsDTO {
	return suggestionsDTO{
		SuggestedTitle:       s.Title,
		SuggestedDescription: s.Description,
		SuggestedKeywords:    lo.Ternary(s.Keywords == nil, []string{}, s.Keywords),
		LocationInsight:      s.LocationInsight,
	}
}

func analysisToDTO(a model.QualityAnalysis) analysisDTO {
	return analysisDTO{
		QualityScore: string(a.Score),
		Issues:       lo.Ternary(a.Issues == nil, []string{}, a.Issues),
	}
}

func draftToDTO(d model.ListingDraft) draftDTO {
	out := draftDTO{
		Step:         int(d.Step),
		StepName:     d.Step.String(),
		CanAdvance:   wizard.CanAdvance(d.Step, &d) == nil,
		Title:        d.Title,
		Category:     d.Category,
		Description:  d.Description,
		Country:      d.Country,
		MOQ:          d.MOQ,
		UnitPriceUSD: d.UnitPriceUSD,
		QtyAvailable: d.QtyAvailable,
	}
	if d.Image != nil {
		out.ImageType = d.Image.MIMEType
		out.ImageBytes = len(d.Image.Data)
	}
	if d.Suggestions != nil {
		out.Suggestions = lo.ToPtr(suggestionsToDTO(*d.Suggestions))
	}
	if d.Analysis != nil {
		out.Analysis = lo.ToPtr(analysisToDTO(*d.Analysis))
	}
	return out
}

func detailsFromDTO(req draftDetailsRequest) model.ListingDetailsUpdate {
	return model.ListingDetailsUpdate{
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		Country:      req.Country,
		MOQ:          req.MOQ,
		UnitPriceUSD: req.UnitPriceUSD,
		QtyAvailable: req.QtyAvailable,
	}
}
