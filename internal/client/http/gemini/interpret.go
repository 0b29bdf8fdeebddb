package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/converter"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

const interpretPrompt = `You translate a buyer's free-text search on a B2B marketplace for handcrafted goods into structured filters.
Only fill fields the query clearly implies. Prices are unit prices in USD. MOQ is the minimum order quantity in units.
Country names must be English country names.

Query: %q`

var partialFilterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"searchTerm": {Type: genai.TypeString, Description: "Keywords describing the product itself."},
		"countries": {
			Type:        genai.TypeArray,
			Description: "Countries of origin mentioned in the query.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"minPrice": {Type: genai.TypeNumber, Description: "Lowest acceptable unit price in USD."},
		"maxPrice": {Type: genai.TypeNumber, Description: "Highest acceptable unit price in USD."},
		"minMoq":   {Type: genai.TypeInteger, Description: "Lowest acceptable minimum order quantity."},
		"maxMoq":   {Type: genai.TypeInteger, Description: "Highest acceptable minimum order quantity."},
	},
}

func (c *client) Interpret(ctx context.Context, query string) (model.PartialFilter, error) {
	const op = "gemini.Interpret"

	text, err := c.generate(ctx, "interpret", genai.Text(fmt.Sprintf(interpretPrompt, query)), partialFilterSchema)
	if err != nil {
		return model.PartialFilter{}, fmt.Errorf("%s: %w", op, err)
	}

	pf, err := converter.PartialFilterFromJSON(text)
	if err != nil {
		return model.PartialFilter{}, fmt.Errorf("%s: %w", op, err)
	}
	return pf, nil
}
