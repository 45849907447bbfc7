// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	ErrCrewNotFound = errors.New("crew member not found")
)

type CrewOperationInterface interface {
	// GetCrewMembers returns one page of crew members together with the total row count.
	GetCrewMembers(page, pageSize int) (crews []*CrewMember, total int64, err error)
	// GetCrewMemberById returns ErrCrewNotFound when no row matches.
	GetCrewMemberById(id uint) (crew *CrewMember, err error)
	// ToggleCrewStatus flips active/inactive in a single conditional update
	// and returns the refreshed row. ErrCrewNotFound when no row matches.
	ToggleCrewStatus(id uint) (crew *CrewMember, err error)
	// GetAvailableCrew lists active crew at the base whose rest deadline
	// does not extend past the given date.
	GetAvailableCrew(baseAirport string, onDate time.Time) (crews []*CrewMember, err error)
}
