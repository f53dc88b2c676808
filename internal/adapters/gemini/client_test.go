package gemini

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain json passes through",
			raw:  `{"price": 950, "currency": "TWD"}`,
			want: `{"price": 950, "currency": "TWD"}`,
		},
		{
			name: "strips json fence",
			raw:  "```json\n{\"price\": 950}\n```",
			want: `{"price": 950}`,
		},
		{
			name: "strips bare fence",
			raw:  "```\n{\"price\": 950}\n```",
			want: `{"price": 950}`,
		},
		{
			name: "extracts object from surrounding prose",
			raw:  "The latest price is: {\"price\": 950, \"currency\": \"TWD\"} as of today.",
			want: `{"price": 950, "currency": "TWD"}`,
		},
		{
			name: "leading whitespace",
			raw:  "  \n {\"price\": 1}",
			want: `{"price": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelJSON(tt.raw))
		})
	}
}

func TestParsePriceQuote(t *testing.T) {
	quote, err := parsePriceQuote("```json\n{\"price\": 947.5, \"currency\": \"TWD\"}\n```")

	require.NoError(t, err)
	assert.True(t, quote.Price.Equal(decimal.NewFromFloat(947.5)))
	assert.Equal(t, "TWD", quote.Currency)
}

func TestParsePriceQuote_RejectsNegativePrice(t *testing.T) {
	_, err := parsePriceQuote(`{"price": -10, "currency": "TWD"}`)

	assert.Error(t, err)
}

func TestParsePriceQuote_RejectsGarbage(t *testing.T) {
	_, err := parsePriceQuote("I could not find a price for that symbol.")

	assert.Error(t, err)
}
