package wizard

import (
	"fmt"

	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

// Step identifies one of the six ordered wizard steps
type Step int

const (
	StepCargo Step = iota + 1
	StepRoute
	StepDetails
	StepServices
	StepResults
	StepBooking
)

func (s Step) String() string {
	switch s {
	case StepCargo:
		return "cargo"
	case StepRoute:
		return "route"
	case StepDetails:
		return "details"
	case StepServices:
		return "services"
	case StepResults:
		return "results"
	case StepBooking:
		return "booking"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ResultsHook fires whenever the Results step is entered. seq is the fetch
// sequence assigned to that entry and snapshotKey the draft's route+cargo
// snapshot at that moment; results are applied only while both still match.
type ResultsHook func(seq uint64, snapshotKey string)

// Controller sequences the six wizard steps over a single draft.
//
// It owns the only write access to the draft's step position: forward
// transitions are gated on the current step's required fields, Prev is
// always available except at the first step and after booking, and a route
// pre-supplied from outside (a landing-page search) auto-advances past the
// cargo step exactly once.
type Controller struct {
	draft *quote.Draft
	step  Step

	// autoAdvanced makes the route auto-advance idempotent; manualReturn
	// suppresses it after the user deliberately navigated back to Cargo
	autoAdvanced bool
	manualReturn bool

	selectedQuoteID string

	fetchSeq    uint64
	resultsHook ResultsHook
}

// NewController creates a controller positioned on the cargo step
func NewController(draft *quote.Draft) *Controller {
	return &Controller{
		draft: draft,
		step:  StepCargo,
	}
}

// Draft returns the draft this wizard session owns
func (c *Controller) Draft() *quote.Draft {
	return c.draft
}

// Step returns the currently visible step
func (c *Controller) Step() Step {
	return c.step
}

// SetResultsHook registers the fetch trigger fired on every Results entry
func (c *Controller) SetResultsHook(hook ResultsHook) {
	c.resultsHook = hook
}

// FetchSeq returns the sequence of the most recent Results entry
func (c *Controller) FetchSeq() uint64 {
	return c.fetchSeq
}

// Observe applies the guarded auto-advance rule: on the cargo step with
// both route endpoints already populated, advance to the route step without
// user action. Idempotent, and suppressed once the user has manually
// navigated back to the cargo step.
func (c *Controller) Observe() {
	if c.step != StepCargo || c.autoAdvanced || c.manualReturn {
		return
	}
	if !c.draft.HasRoute() {
		return
	}
	c.autoAdvanced = true
	c.step = StepRoute
}

// Next advances by one step if the current step's requirements are met
func (c *Controller) Next() error {
	switch c.step {
	case StepCargo:
		if err := c.draft.Cargo.Validate(); err != nil {
			return err
		}
	case StepRoute:
		if err := c.draft.ValidateRoute(); err != nil {
			return err
		}
	case StepDetails, StepServices:
		// No required fields; the backend treats details as optional
	case StepResults:
		if c.selectedQuoteID == "" {
			return shared.NewValidationError("selection", "select an offer before continuing")
		}
	case StepBooking:
		return shared.NewDomainError("no forward transition from the booking step")
	}

	c.step++
	if c.step == StepResults {
		c.enterResults()
	}
	return nil
}

// Prev retreats by one step. It is undefined at the first step, and from
// Booking because a committed booking is not reversible. Prev stays
// available while a rate fetch is pending; any result arriving for a step
// that was left is suppressed via AcceptResults.
func (c *Controller) Prev() error {
	switch c.step {
	case StepCargo:
		return shared.NewDomainError("already at the first step")
	case StepBooking:
		return shared.NewDomainError("booking is not reversible")
	}

	c.step--
	if c.step == StepCargo {
		c.manualReturn = true
	}
	if c.step < StepResults {
		// Leaving results invalidates the selection along with any
		// in-flight fetch
		c.selectedQuoteID = ""
	}
	return nil
}

// Select records the offer the user picked from the current results
func (c *Controller) Select(quoteID string) {
	if c.step == StepResults {
		c.selectedQuoteID = quoteID
	}
}

// SelectedQuoteID returns the currently selected offer, if any
func (c *Controller) SelectedQuoteID() string {
	return c.selectedQuoteID
}

// AcceptResults reports whether a fetch completion with the given sequence
// may be applied: the Results step must still be active and no newer entry
// may have superseded the fetch.
func (c *Controller) AcceptResults(seq uint64) bool {
	return c.step == StepResults && seq == c.fetchSeq
}

// enterResults assigns a fresh fetch sequence and fires the hook. Every
// entry refetches: the draft may have changed while the user was on an
// earlier step, so cached results are never trusted.
func (c *Controller) enterResults() {
	c.fetchSeq++
	c.selectedQuoteID = ""
	if c.resultsHook != nil {
		c.resultsHook(c.fetchSeq, c.draft.SnapshotKey())
	}
}
