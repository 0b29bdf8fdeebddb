package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestPartialFilterFromJSON(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		input   string
		wantErr bool
		assert  func(t *testing.T, pf model.PartialFilter)
	}

	tests := []testCase{
		{
			name:  "well-typed reply",
			input: `{"searchTerm":" rugs ","countries":["Morocco"],"minPrice":10,"maxPrice":80.5,"minMoq":5,"maxMoq":100}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				require.NotNil(t, pf.SearchTerm)
				assert.Equal(t, "rugs", *pf.SearchTerm)
				assert.Equal(t, []string{"Morocco"}, pf.Countries)
				assert.Equal(t, 10.0, *pf.MinPrice)
				assert.Equal(t, 80.5, *pf.MaxPrice)
				assert.Equal(t, int64(5), *pf.MinMOQ)
				assert.Equal(t, int64(100), *pf.MaxMOQ)
			},
		},
		{
			name:  "countries as a single string",
			input: `{"countries":"Kenya, Peru"}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.Equal(t, []string{"Kenya", "Peru"}, pf.Countries)
				assert.Nil(t, pf.SearchTerm)
				assert.Nil(t, pf.MinPrice)
			},
		},
		{
			name:  "numbers as strings",
			input: `{"maxPrice":"$1,250.75","minMoq":"12"}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.Equal(t, 1250.75, *pf.MaxPrice)
				assert.Equal(t, int64(12), *pf.MinMOQ)
			},
		},
		{
			name:  "negative and garbage numbers are dropped",
			input: `{"minPrice":-5,"maxPrice":"cheap","maxMoq":true}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.True(t, pf.Empty())
			},
		},
		{
			name:  "unknown fields ignored and non-string countries skipped",
			input: `{"color":"red","countries":["India",7,null," "]}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.Equal(t, []string{"India"}, pf.Countries)
			},
		},
		{
			name:  "explicit empty countries clears selection",
			input: `{"countries":[]}`,
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.NotNil(t, pf.Countries)
				assert.Empty(t, pf.Countries)
			},
		},
		{
			name:  "markdown fenced",
			input: "```json\n{\"searchTerm\":\"bowls\"}\n```",
			assert: func(t *testing.T, pf model.PartialFilter) {
				assert.Equal(t, "bowls", *pf.SearchTerm)
			},
		},
		{name: "malformed", input: `{"searchTerm":`, wantErr: true},
		{name: "not an object", input: `["Kenya"]`, wantErr: true},
		{name: "empty", input: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pf, err := PartialFilterFromJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assert(t, pf)
		})
	}
}

func TestQualityAnalysisFromJSON(t *testing.T) {
	t.Parallel()

	got, err := QualityAnalysisFromJSON(`{"qualityScore":"b","issues":["loose thread"]}`)
	require.NoError(t, err)
	assert.Equal(t, model.QualityAnalysis{Score: model.QualityB, Issues: []string{"loose thread"}}, got)

	got, err = QualityAnalysisFromJSON(`{"qualityScore":"A"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Issues)

	_, err = QualityAnalysisFromJSON(`{"qualityScore":"F","issues":[]}`)
	assert.Error(t, err)
}

func TestListingSuggestionsFromJSON(t *testing.T) {
	t.Parallel()

	got, err := ListingSuggestionsFromJSON(`{
		"suggestedTitle":"Kamba Sisal Basket",
		"suggestedDescription":"Woven in Machakos",
		"suggestedKeywords":["sisal","basket"],
		"locationInsight":"Sisal has been grown in Kenya since 1893."
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Kamba Sisal Basket", got.Title)
	assert.Equal(t, []string{"sisal", "basket"}, got.Keywords)

	_, err = ListingSuggestionsFromJSON(`{"suggestedKeywords":["x"]}`)
	assert.Error(t, err)
}
