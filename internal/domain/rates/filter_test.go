package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborlane/freightflow-go/internal/domain/rates"
)

func TestFilter_ZeroValuePassesEverything(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", CarrierName: "Maersk", TransitDays: 30},
		{ID: "b", CarrierName: "CMA CGM", TransitDays: 45},
	}

	out := rates.Filter{}.Apply(quotes)
	assert.Equal(t, quotes, out)
}

func TestFilter_CarrierAllowList(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", CarrierName: "Maersk"},
		{ID: "b", CarrierName: "CMA CGM"},
		{ID: "c", CarrierName: "maersk"},
	}

	out := rates.Filter{Carriers: []string{"Maersk"}}.Apply(quotes)
	assert.Equal(t, []string{"a", "c"}, quoteIDs(out))
}

func TestFilter_MaxTransitDaysExcludes(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", TransitDays: 10},
		{ID: "b", TransitDays: 20},
		{ID: "c", TransitDays: 21},
	}

	// Quotes above the ceiling are excluded, not deprioritized
	out := rates.Filter{MaxTransitDays: 20}.Apply(quotes)
	assert.Equal(t, []string{"a", "b"}, quoteIDs(out))
}

func TestFilter_EmptyResultIsNormal(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", CarrierName: "Maersk", TransitDays: 40},
	}

	out := rates.Filter{MaxTransitDays: 10}.Apply(quotes)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestQuoteSet_Membership(t *testing.T) {
	set := &rates.QuoteSet{
		Sequence: 3,
		Quotes: []rates.CarrierQuote{
			{ID: "a"},
			{ID: "b"},
		},
	}

	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("z"))

	q, ok := set.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "b", q.ID)

	var nilSet *rates.QuoteSet
	assert.False(t, nilSet.Contains("a"))
	assert.True(t, nilSet.IsEmpty())
}
