package model

type WizardStep int

const (
	WizardStepDetails WizardStep = iota + 1
	WizardStepSuggestions
	WizardStepImage
	WizardStepAnalysis
	WizardStepReview
)

func (s WizardStep) String() string {
	switch s {
	case WizardStepDetails:
		return "details"
	case WizardStepSuggestions:
		return "suggestions"
	case WizardStepImage:
		return "image"
	case WizardStepAnalysis:
		return "analysis"
	case WizardStepReview:
		return "review"
	}
	return "unknown"
}

type ListingImage struct {
	Data     []byte
	MIMEType string
}

// ListingDraft accumulates a supplier's listing across wizard steps.
type ListingDraft struct {
	Step WizardStep

	Title        string
	Category     string
	Description  string
	Country      string
	MOQ          int64
	UnitPriceUSD float64
	QtyAvailable int64

	Image       *ListingImage
	Suggestions *ListingSuggestions
	Analysis    *QualityAnalysis
}

type ListingDetailsUpdate struct {
	Title        *string
	Category     *string
	Description  *string
	Country      *string
	MOQ          *int64
	UnitPriceUSD *float64
	QtyAvailable *int64
}

type SuggestionField string

const (
	SuggestionFieldTitle       SuggestionField = "title"
	SuggestionFieldDescription SuggestionField = "description"
)
