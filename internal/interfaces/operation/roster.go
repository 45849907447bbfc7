// Package operation
package operation

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrCrewSetChanged means the post-lock re-fetch returned fewer rows
	// than were selected. The row lock should make this impossible, so it
	// is treated as a serious anomaly rather than a normal error.
	ErrCrewSetChanged = errors.New("selected crew set changed within transaction")
)

// InsufficientCrewError reports how many more active crew members the base
// would need for a full roster.
type InsufficientCrewError struct {
	BaseAirport string
	Needed      int
}

func (e *InsufficientCrewError) Error() string {
	return fmt.Sprintf("not enough active crew at base %s, need %d more", e.BaseAirport, e.Needed)
}

// IntegrityError wraps a constraint violation raised while writing roster
// rows. The underlying constraint message is surfaced to the caller.
type IntegrityError struct {
	Cause error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("database integrity error: %v", e.Cause)
}

func (e *IntegrityError) Unwrap() error { return e.Cause }

// RosterResult is what a successful assignment transaction hands back.
type RosterResult struct {
	RosterName   string
	FlightId     uint
	BaseAirport  string
	AssignedCrew []*CrewMember
}

type RosterOperationInterface interface {
	// CreateRoster atomically assigns the four lowest-id active crew
	// members at the base to the flight: validates the flight, locks the
	// candidates, writes one assignment row per member and flips each
	// member to inactive, committing once. Any failure rolls the whole
	// transaction back.
	CreateRoster(baseAirport string, flightId uint) (result *RosterResult, err error)
	// GetRosters returns all assignment rows ordered by assigned_at descending.
	GetRosters() (rosters []*RosterAssignment, err error)
}
