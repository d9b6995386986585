package ports

import "context"

// PlaceHit is one row returned by the remote ports/places index
type PlaceHit struct {
	DisplayName string
	CountryCode string
	PlaceType   string
}

// RateRequest keys a quotes fetch. Only route and cargo fields appear here:
// service toggles and incoterm affect billing, not which offers exist.
type RateRequest struct {
	Origin      string
	Destination string
	CargoType   string

	// Full-container fields
	ContainerSize string
	Quantity      int

	// Loose-cargo fields
	WeightKg  float64
	VolumeCbm float64

	Commodity string
	ReadyDate string
}

// FeeLineData is one fee component on a fetched quote
type FeeLineData struct {
	Label  string
	Amount float64
}

// QuoteData is a carrier offer as returned by the pricing backend
type QuoteData struct {
	ID            string
	CarrierName   string
	Price         float64
	Currency      string
	TransitDays   int
	VesselName    string
	DepartureDate string
	FeeBreakdown  []FeeLineData
	RiskScore     float64
}

// BookingRequest echoes the selected quote's fields verbatim
type BookingRequest struct {
	QuoteID     string
	Origin      string
	Destination string
	Carrier     string
	Price       float64
	Currency    string
}

// BookingResult is the backend's answer to a booking request
type BookingResult struct {
	Success    bool
	BookingRef string
}

// FreightAPI defines the backend HTTP operations the engine relies on.
//
// FetchQuotes must treat an empty quote list as success. CreateBooking must
// be a single attempt at the transport level: the implementation must never
// retry it on its own, since a duplicate submission risks a duplicate
// booking.
type FreightAPI interface {
	SearchPorts(ctx context.Context, query string) ([]PlaceHit, error)
	FetchQuotes(ctx context.Context, req *RateRequest) ([]QuoteData, error)
	CreateBooking(ctx context.Context, req *BookingRequest) (*BookingResult, error)
}
