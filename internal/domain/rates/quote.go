package rates

// FeeLine is one component of a quote's fee breakdown
type FeeLine struct {
	Label  string
	Amount float64
}

// CarrierQuote is a priced carrier proposal returned by the pricing backend.
// Quotes are immutable once fetched: the engine re-sorts and filters
// collections of them but never mutates one.
type CarrierQuote struct {
	ID            string
	CarrierName   string
	Price         float64
	Currency      string
	TransitDays   int
	VesselName    string
	DepartureDate string
	FeeBreakdown  []FeeLine
	RiskScore     float64
}

// QuoteSet ties the result of one fetch to the wizard fetch sequence and the
// draft snapshot it was issued for. A selection is only committable while it
// belongs to the latest set.
type QuoteSet struct {
	Sequence    uint64
	SnapshotKey string
	Quotes      []CarrierQuote
}

// Contains reports whether a quote ID belongs to this set
func (s *QuoteSet) Contains(quoteID string) bool {
	_, ok := s.Find(quoteID)
	return ok
}

// Find returns the quote with the given ID, if present
func (s *QuoteSet) Find(quoteID string) (CarrierQuote, bool) {
	if s == nil {
		return CarrierQuote{}, false
	}
	for _, q := range s.Quotes {
		if q.ID == quoteID {
			return q, true
		}
	}
	return CarrierQuote{}, false
}

// IsEmpty reports whether the set holds no quotes. An empty set is a normal
// terminal state (zero matches), not a failure.
func (s *QuoteSet) IsEmpty() bool {
	return s == nil || len(s.Quotes) == 0
}
