package rates

import "sort"

// RankMode selects the comparator used to order a quote collection
type RankMode string

const (
	// RankCheapest orders by ascending price
	RankCheapest RankMode = "cheapest"

	// RankFastest orders by ascending transit time
	RankFastest RankMode = "fastest"

	// RankBest orders by ascending price x transit days, rewarding quotes
	// that are simultaneously cheap and fast. This is the default mode.
	RankBest RankMode = "best"

	// RankGreenest is reserved for a sustainability metric. Until the
	// backend supplies one, it falls back to RankBest rather than
	// silently leaving the collection unordered.
	RankGreenest RankMode = "greenest"
)

// ParseRankMode maps a raw mode string to a RankMode, defaulting to best
func ParseRankMode(s string) RankMode {
	switch RankMode(s) {
	case RankCheapest, RankFastest, RankBest, RankGreenest:
		return RankMode(s)
	default:
		return RankBest
	}
}

// RankStrategy scores a quote under one ranking mode; lower scores sort
// first. Each mode is its own strategy so new modes can be added without
// touching the ranker.
type RankStrategy interface {
	Score(q CarrierQuote) float64
	Mode() RankMode
}

type cheapestStrategy struct{}

func (cheapestStrategy) Score(q CarrierQuote) float64 { return q.Price }
func (cheapestStrategy) Mode() RankMode               { return RankCheapest }

type fastestStrategy struct{}

func (fastestStrategy) Score(q CarrierQuote) float64 { return float64(q.TransitDays) }
func (fastestStrategy) Mode() RankMode               { return RankFastest }

type bestStrategy struct{}

func (bestStrategy) Score(q CarrierQuote) float64 { return q.Price * float64(q.TransitDays) }
func (bestStrategy) Mode() RankMode               { return RankBest }

// Ranker orders quote collections under a selectable ranking mode
type Ranker struct {
	strategies map[RankMode]RankStrategy
}

// NewRanker creates a ranker with the built-in strategies registered.
// Greenest has no strategy of its own yet and resolves to best.
func NewRanker() *Ranker {
	return &Ranker{
		strategies: map[RankMode]RankStrategy{
			RankCheapest: cheapestStrategy{},
			RankFastest:  fastestStrategy{},
			RankBest:     bestStrategy{},
		},
	}
}

// Register adds or replaces the strategy for a mode. This is the extension
// point for greenest once a sustainability metric exists upstream.
func (r *Ranker) Register(strategy RankStrategy) {
	r.strategies[strategy.Mode()] = strategy
}

// Rank returns a new slice ordered under the given mode. The sort is stable:
// equally-scored quotes keep their fetch order, so re-ranking an unchanged
// collection never reorders it between renders.
func (r *Ranker) Rank(quotes []CarrierQuote, mode RankMode) []CarrierQuote {
	strategy := r.strategyFor(mode)

	out := make([]CarrierQuote, len(quotes))
	copy(out, quotes)

	sort.SliceStable(out, func(i, j int) bool {
		return strategy.Score(out[i]) < strategy.Score(out[j])
	})
	return out
}

func (r *Ranker) strategyFor(mode RankMode) RankStrategy {
	if s, ok := r.strategies[mode]; ok {
		return s
	}
	// Unregistered modes (greenest included) fall back to best
	return r.strategies[RankBest]
}
