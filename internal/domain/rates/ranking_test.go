package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborlane/freightflow-go/internal/domain/rates"
)

func quoteIDs(quotes []rates.CarrierQuote) []string {
	ids := make([]string, len(quotes))
	for i, q := range quotes {
		ids[i] = q.ID
	}
	return ids
}

func TestRanker_Cheapest(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", Price: 1500, TransitDays: 12},
		{ID: "b", Price: 900, TransitDays: 30},
		{ID: "c", Price: 1200, TransitDays: 9},
	}

	ranked := rates.NewRanker().Rank(quotes, rates.RankCheapest)
	assert.Equal(t, []string{"b", "c", "a"}, quoteIDs(ranked))
}

func TestRanker_Fastest(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", Price: 1500, TransitDays: 12},
		{ID: "b", Price: 900, TransitDays: 30},
		{ID: "c", Price: 1200, TransitDays: 9},
	}

	ranked := rates.NewRanker().Rank(quotes, rates.RankFastest)
	assert.Equal(t, []string{"c", "a", "b"}, quoteIDs(ranked))
}

func TestRanker_BestComposite(t *testing.T) {
	// score(a) = 10000, score(b) = 10800: a wins despite being slower
	quotes := []rates.CarrierQuote{
		{ID: "b", Price: 1200, TransitDays: 9},
		{ID: "a", Price: 1000, TransitDays: 10},
	}

	ranked := rates.NewRanker().Rank(quotes, rates.RankBest)
	assert.Equal(t, []string{"a", "b"}, quoteIDs(ranked))
}

func TestRanker_StableOnTies(t *testing.T) {
	// Identical scores under every mode: fetch order must survive
	quotes := []rates.CarrierQuote{
		{ID: "first", Price: 1000, TransitDays: 10},
		{ID: "second", Price: 1000, TransitDays: 10},
		{ID: "third", Price: 1000, TransitDays: 10},
	}
	ranker := rates.NewRanker()

	for _, mode := range []rates.RankMode{rates.RankCheapest, rates.RankFastest, rates.RankBest} {
		ranked := ranker.Rank(quotes, mode)
		assert.Equal(t, []string{"first", "second", "third"}, quoteIDs(ranked), "mode %s", mode)
	}
}

func TestRanker_RerankIsIdempotent(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", Price: 1000, TransitDays: 10},
		{ID: "b", Price: 800, TransitDays: 14},
		{ID: "c", Price: 800, TransitDays: 14},
	}
	ranker := rates.NewRanker()

	once := ranker.Rank(quotes, rates.RankBest)
	twice := ranker.Rank(once, rates.RankBest)
	assert.Equal(t, quoteIDs(once), quoteIDs(twice))
}

func TestRanker_GreenestFallsBackToBest(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "b", Price: 1200, TransitDays: 9},
		{ID: "a", Price: 1000, TransitDays: 10},
	}
	ranker := rates.NewRanker()

	greenest := ranker.Rank(quotes, rates.RankGreenest)
	best := ranker.Rank(quotes, rates.RankBest)
	assert.Equal(t, quoteIDs(best), quoteIDs(greenest))
}

func TestRanker_DoesNotMutateInput(t *testing.T) {
	quotes := []rates.CarrierQuote{
		{ID: "a", Price: 1500, TransitDays: 12},
		{ID: "b", Price: 900, TransitDays: 30},
	}

	_ = rates.NewRanker().Rank(quotes, rates.RankCheapest)
	assert.Equal(t, []string{"a", "b"}, quoteIDs(quotes))
}

func TestParseRankMode(t *testing.T) {
	assert.Equal(t, rates.RankCheapest, rates.ParseRankMode("cheapest"))
	assert.Equal(t, rates.RankGreenest, rates.ParseRankMode("greenest"))
	assert.Equal(t, rates.RankBest, rates.ParseRankMode(""))
	assert.Equal(t, rates.RankBest, rates.ParseRankMode("bogus"))
}
