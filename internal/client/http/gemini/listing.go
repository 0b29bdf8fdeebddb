package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/converter"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

const qualityPrompt = `You are a meticulous quality control inspector for handcrafted products.
Analyze the provided image for visual defects such as uneven stitching, color inconsistencies, cracks or blemishes.
Grade the overall quality from A (excellent) to D (poor) and list each issue you observe.`

const suggestionPrompt = `You are an expert e-commerce merchandiser specializing in handcrafted goods for a global B2B audience.
A supplier from %s has provided the following draft listing:

Title: %q
Category: %q
Description: %q

Provide:
1. suggestedTitle: a compelling, SEO-friendly title.
2. suggestedDescription: a rewritten description that highlights craftsmanship, materials, potential uses and the product's origin.
3. suggestedKeywords: 5 to 7 relevant keywords.
4. locationInsight: a short, interesting fact about the craft or materials of the supplier's region.`

var qualitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"qualityScore": {
			Type:        genai.TypeString,
			Description: "A single letter grade from A (Excellent) to D (Poor).",
			Enum:        []string{"A", "B", "C", "D"},
		},
		"issues": {
			Type:        genai.TypeArray,
			Description: "Observed quality issues. Empty when there are none.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"qualityScore", "issues"},
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestedTitle":       {Type: genai.TypeString},
		"suggestedDescription": {Type: genai.TypeString},
		"suggestedKeywords":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"locationInsight":      {Type: genai.TypeString},
	},
	Required: []string{"suggestedTitle", "suggestedDescription", "suggestedKeywords", "locationInsight"},
}

func (c *client) AnalyzeImage(ctx context.Context, img model.ListingImage) (model.QualityAnalysis, error) {
	const op = "gemini.AnalyzeImage"

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(qualityPrompt),
			genai.NewPartFromBytes(img.Data, img.MIMEType),
		}, genai.RoleUser),
	}

	text, err := c.generate(ctx, "analyze_image", contents, qualitySchema)
	if err != nil {
		return model.QualityAnalysis{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := converter.QualityAnalysisFromJSON(text)
	if err != nil {
		return model.QualityAnalysis{}, fmt.Errorf("%s: %w", op, wrapDecode(err))
	}
	return res, nil
}

func (c *client) SuggestListing(ctx context.Context, req model.ListingSuggestionRequest) (model.ListingSuggestions, error) {
	const op = "gemini.SuggestListing"

	prompt := fmt.Sprintf(suggestionPrompt, req.Country, req.Title, req.Category, req.Description)
	text, err := c.generate(ctx, "suggest_listing", genai.Text(prompt), suggestionSchema)
	if err != nil {
		return model.ListingSuggestions{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := converter.ListingSuggestionsFromJSON(text)
	if err != nil {
		return model.ListingSuggestions{}, fmt.Errorf("%s: %w", op, wrapDecode(err))
	}
	return res, nil
}
