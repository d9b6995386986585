package quote

import (
	"fmt"
	"strings"

	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

// Incoterm is the agreed trade term for a shipment
type Incoterm string

const (
	IncotermFOB Incoterm = "FOB"
	IncotermEXW Incoterm = "EXW"
	IncotermCIF Incoterm = "CIF"
	IncotermDDP Incoterm = "DDP"
	IncotermFCA Incoterm = "FCA"
	IncotermCFR Incoterm = "CFR"
	IncotermDAP Incoterm = "DAP"
)

var incoterms = map[Incoterm]bool{
	IncotermFOB: true,
	IncotermEXW: true,
	IncotermCIF: true,
	IncotermDDP: true,
	IncotermFCA: true,
	IncotermCFR: true,
	IncotermDAP: true,
}

// ParseIncoterm validates a raw incoterm string (case-insensitive)
func ParseIncoterm(s string) (Incoterm, error) {
	term := Incoterm(strings.ToUpper(strings.TrimSpace(s)))
	if !incoterms[term] {
		return "", shared.NewValidationError("incoterm", fmt.Sprintf("unknown incoterm %q", s))
	}
	return term, nil
}

// Party identifies who covers port charges
type Party string

const (
	PartyAgent    Party = "agent"
	PartySupplier Party = "supplier"
)

// ServiceSelection is the set of optional value-added services on a draft
type ServiceSelection struct {
	Insurance   bool
	Customs     bool
	Warehousing bool
}
