package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborlane/freightflow-go/internal/domain/location"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

// PlaceField is one endpoint of the route: the user's free text, optionally
// replaced by a canonical place selected from lookup candidates
type PlaceField struct {
	Raw      string
	Resolved *location.Place
}

// Value returns the canonical name when resolved, the raw text otherwise
func (f PlaceField) Value() string {
	if f.Resolved != nil {
		return f.Resolved.Name
	}
	return f.Raw
}

// IsEmpty reports whether the field has neither raw text nor a resolution
func (f PlaceField) IsEmpty() bool {
	return f.Value() == ""
}

// Draft is the single mutable aggregate for one in-progress quote attempt.
// It is owned exclusively by the wizard session that created it: every
// mutation goes through the update methods below, and all other components
// read it. Created on wizard entry, reset on submission or abandonment.
type Draft struct {
	id        string
	createdAt time.Time

	Cargo       CargoSpec
	Origin      PlaceField
	Destination PlaceField

	ReadyDate time.Time
	Incoterm  Incoterm
	Commodity string

	Services             ServiceSelection
	PortChargesCoveredBy Party
}

// NewDraft creates an empty draft for a new wizard session
func NewDraft(clock shared.Clock) *Draft {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Draft{
		id:                   uuid.NewString(),
		createdAt:            clock.Now(),
		PortChargesCoveredBy: PartyAgent,
	}
}

// ID returns the session-scoped draft identifier
func (d *Draft) ID() string {
	return d.id
}

// CreatedAt returns when the draft was created
func (d *Draft) CreatedAt() time.Time {
	return d.createdAt
}

// SetOrigin records free text for the origin, dropping any prior resolution
func (d *Draft) SetOrigin(raw string) {
	d.Origin = PlaceField{Raw: raw}
}

// SetDestination records free text for the destination, dropping any prior
// resolution
func (d *Draft) SetDestination(raw string) {
	d.Destination = PlaceField{Raw: raw}
}

// ResolveOrigin replaces the origin with a canonical place
func (d *Draft) ResolveOrigin(place location.Place) {
	d.Origin = PlaceField{Raw: place.Name, Resolved: &place}
}

// ResolveDestination replaces the destination with a canonical place
func (d *Draft) ResolveDestination(place location.Place) {
	d.Destination = PlaceField{Raw: place.Name, Resolved: &place}
}

// HasRoute reports whether both endpoints are populated
func (d *Draft) HasRoute() bool {
	return !d.Origin.IsEmpty() && !d.Destination.IsEmpty()
}

// ValidateRoute gates the transition out of the route step: both endpoints
// must be set and must not normalize to the same location
func (d *Draft) ValidateRoute() error {
	if d.Origin.IsEmpty() {
		return shared.NewValidationError("origin", "is required")
	}
	if d.Destination.IsEmpty() {
		return shared.NewValidationError("destination", "is required")
	}
	if location.SameLocation(d.Origin.Value(), d.Destination.Value()) {
		return shared.NewSameLocationError(d.Origin.Value(), d.Destination.Value())
	}
	return nil
}

// SetDetails records shipment details
func (d *Draft) SetDetails(readyDate time.Time, incoterm Incoterm, commodity string) {
	d.ReadyDate = readyDate
	d.Incoterm = incoterm
	d.Commodity = commodity
}

// SnapshotKey derives a stable key over the route and cargo fields: the
// fields that determine which quotes are fetched. Service toggles and
// incoterm deliberately do not contribute; they affect billing, not which
// offers exist. A fetched quote collection is current only while the draft's
// snapshot key still equals the one captured at fetch time.
func (d *Draft) SnapshotKey() string {
	switch d.Cargo.Mode {
	case CargoModeContainer:
		return fmt.Sprintf("%s|%s|%s|%s|%d",
			d.Origin.Value(), d.Destination.Value(),
			d.Cargo.Mode, d.Cargo.Container.Size, d.Cargo.Container.Quantity)
	case CargoModeLoose:
		return fmt.Sprintf("%s|%s|%s|%.3f|%.3f",
			d.Origin.Value(), d.Destination.Value(),
			d.Cargo.Mode, d.Cargo.Loose.WeightKg, d.Cargo.Loose.VolumeCbm)
	default:
		return fmt.Sprintf("%s|%s|unset", d.Origin.Value(), d.Destination.Value())
	}
}

// Reset clears the draft back to its initial state while keeping the session
// identity. Called on submission or abandonment.
func (d *Draft) Reset() {
	*d = Draft{
		id:                   d.id,
		createdAt:            d.createdAt,
		PortChargesCoveredBy: PartyAgent,
	}
}
