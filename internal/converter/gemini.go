package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// PartialFilterFromJSON coerces an untrusted interpreter reply into a PartialFilter.
// Unknown fields are ignored; numbers may arrive as strings; countries may be a
// single string or a list; negative and non-finite numbers are dropped.
func PartialFilterFromJSON(text string) (model.PartialFilter, error) {
	var raw map[string]any
	if err := decodeLoose(text, &raw); err != nil {
		return model.PartialFilter{}, err
	}

	var pf model.PartialFilter
	if v, ok := raw["searchTerm"].(string); ok {
		pf.SearchTerm = lo.ToPtr(strings.TrimSpace(v))
	}
	if v, ok := raw["countries"]; ok {
		pf.Countries = coerceStrings(v)
	}
	pf.MinPrice = coerceAmount(raw["minPrice"])
	pf.MaxPrice = coerceAmount(raw["maxPrice"])
	pf.MinMOQ = coerceCount(raw["minMoq"])
	pf.MaxMOQ = coerceCount(raw["maxMoq"])

	return pf, nil
}

func QualityAnalysisFromJSON(text string) (model.QualityAnalysis, error) {
	var raw struct {
		QualityScore string `json:"qualityScore"`
		Issues       any    `json:"issues"`
	}
	if err := decodeLoose(text, &raw); err != nil {
		return model.QualityAnalysis{}, err
	}

	score := model.QualityScore(strings.ToUpper(strings.TrimSpace(raw.QualityScore)))
	if !score.Valid() {
		return model.QualityAnalysis{}, fmt.Errorf("invalid quality score %q", raw.QualityScore)
	}

	issues := coerceStrings(raw.Issues)
	if issues == nil {
		issues = []string{}
	}
	return model.QualityAnalysis{Score: score, Issues: issues}, nil
}

func ListingSuggestionsFromJSON(text string) (model.ListingSuggestions, error) {
	var raw struct {
		SuggestedTitle       any `json:"suggestedTitle"`
		SuggestedDescription any `json:"suggestedDescription"`
		SuggestedKeywords    any `json:"suggestedKeywords"`
		LocationInsight      any `json:"locationInsight"`
	}
	if err := decodeLoose(text, &raw); err != nil {
		return model.ListingSuggestions{}, err
	}

	out := model.ListingSuggestions{
		Title:           coerceString(raw.SuggestedTitle),
		Description:     coerceString(raw.SuggestedDescription),
		Keywords:        coerceStrings(raw.SuggestedKeywords),
		LocationInsight: coerceString(raw.LocationInsight),
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	if out.Title == "" && out.Description == "" {
		return model.ListingSuggestions{}, errors.New("suggestions carry neither title nor description")
	}
	return out, nil
}

// decodeLoose accepts a JSON object optionally wrapped in a markdown code fence.
func decodeLoose(text string, dst any) error {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	if text == "" {
		return errors.New("empty response")
	}
	if err := json.Unmarshal([]byte(text), dst); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceStrings returns nil when v is absent or of an unusable type, and a
// non-nil slice otherwise. A single string is split on commas.
func coerceStrings(v any) []string {
	var parts []string
	switch t := v.(type) {
	case string:
		parts = strings.Split(t, ",")
	case []any:
		parts = lo.FilterMap(t, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	default:
		return nil
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && !lo.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func coerceNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", "USD", "", "usd", "").Replace(t)
		parsed, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coerceAmount(v any) *float64 {
	f, ok := coerceNumber(v)
	if !ok {
		return nil
	}
	return &f
}

func coerceCount(v any) *int64 {
	f, ok := coerceNumber(v)
	if !ok || f > math.MaxInt64/2 {
		return nil
	}
	return lo.ToPtr(int64(math.Round(f)))
}
