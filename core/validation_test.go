package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSearchQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query := &SearchQuery{
			Industry:      "steel manufacturing",
			Location:      "Mumbai",
			BuyingSignals: "looking for suppliers",
		}
		assert.NoError(t, ValidateSearchQuery(query))
	})

	t.Run("location optional", func(t *testing.T) {
		query := &SearchQuery{Industry: "steel", BuyingSignals: "rfp"}
		assert.NoError(t, ValidateSearchQuery(query))
	})

	t.Run("nil query", func(t *testing.T) {
		err := ValidateSearchQuery(nil)
		assert.ErrorIs(t, err, ErrInvalidSearchQuery)
	})

	t.Run("empty industry", func(t *testing.T) {
		err := ValidateSearchQuery(&SearchQuery{BuyingSignals: "rfp"})
		assert.ErrorIs(t, err, ErrEmptyIndustry)
	})

	t.Run("empty buying signals", func(t *testing.T) {
		err := ValidateSearchQuery(&SearchQuery{Industry: "steel"})
		assert.ErrorIs(t, err, ErrEmptyBuyingSignals)
	})
}

func TestValidateLead(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		lead := &Lead{
			Link:   "https://example.com/rfp",
			Intent: IntentAnalysis{IntentScore: 75},
		}
		assert.NoError(t, ValidateLead(lead))
	})

	t.Run("nil lead", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLead(nil), ErrInvalidLead)
	})

	t.Run("empty link", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLead(&Lead{}), ErrEmptyLink)
	})

	t.Run("score above range", func(t *testing.T) {
		lead := &Lead{Link: "https://example.com", Intent: IntentAnalysis{IntentScore: 101}}
		assert.ErrorIs(t, ValidateLead(lead), ErrScoreOutOfRange)
	})

	t.Run("score below range", func(t *testing.T) {
		lead := &Lead{Link: "https://example.com", Intent: IntentAnalysis{IntentScore: -1}}
		assert.ErrorIs(t, ValidateLead(lead), ErrScoreOutOfRange)
	})
}

func TestValidateExample(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		example := &IntentExample{Bucket: "data1", Text: "issued an RFP for vendors"}
		assert.NoError(t, ValidateExample(example))
	})

	t.Run("nil example", func(t *testing.T) {
		assert.ErrorIs(t, ValidateExample(nil), ErrInvalidExample)
	})

	t.Run("empty bucket", func(t *testing.T) {
		assert.ErrorIs(t, ValidateExample(&IntentExample{Text: "x"}), ErrEmptyBucket)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.ErrorIs(t, ValidateExample(&IntentExample{Bucket: "data1"}), ErrEmptyExampleText)
	})
}
