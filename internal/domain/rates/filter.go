package rates

import "strings"

// Filter holds the client-side predicates applied to a fetched quote
// collection. The zero value filters nothing.
type Filter struct {
	// Carriers is an allow-list of carrier names; empty means no filtering
	Carriers []string

	// MaxTransitDays excludes quotes whose transit time exceeds the
	// ceiling; zero means no ceiling
	MaxTransitDays int
}

// Apply returns the quotes passing every predicate, preserving fetch order
func (f Filter) Apply(quotes []CarrierQuote) []CarrierQuote {
	out := make([]CarrierQuote, 0, len(quotes))
	for _, q := range quotes {
		if !f.allowsCarrier(q.CarrierName) {
			continue
		}
		if f.MaxTransitDays > 0 && q.TransitDays > f.MaxTransitDays {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (f Filter) allowsCarrier(name string) bool {
	if len(f.Carriers) == 0 {
		return true
	}
	for _, allowed := range f.Carriers {
		if strings.EqualFold(allowed, name) {
			return true
		}
	}
	return false
}
