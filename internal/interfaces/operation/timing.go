// Package operation
package operation

import (
	"errors"
)

var (
	ErrTimingNotFound = errors.New("crew timing record not found")
	// ErrTimingRefetch means the row written by an upsert could not be read
	// back inside the same operation. Reported as an internal fault, not a
	// user error.
	ErrTimingRefetch = errors.New("failed to fetch updated timing row")
)

type CrewTimingOperationInterface interface {
	// CheckIn records a new duty start for the crew code: upserts the row,
	// sets check_in to now (UTC, second precision), clears checkout and
	// rest-until fields and overrides rest_time_minutes only when
	// restMinutes is non-nil. Returns the refreshed row.
	CheckIn(crewCode string, restMinutes *int) (timing *CrewTiming, err error)
	// CheckOut stamps the duty end and derives rest_until from the stored
	// rest_time_minutes (left null when the value is not positive).
	// ErrTimingNotFound when the crew code has no timing row.
	CheckOut(crewCode string) (timing *CrewTiming, err error)
	// GetTimingByCrewCode returns ErrTimingNotFound when no row matches.
	GetTimingByCrewCode(crewCode string) (timing *CrewTiming, err error)
}
