// Package service
package service

import (
	"context"
	"time"

	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"github.com/skyharbor-dev/crew-roster/internal/metrics"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

// prometheus instruments register globally, one set serves the package
var testMetrics = metrics.NewMetrics("crew_roster_test")

var testLogger = utils.NewLogger()

func testHttpConfig() *c.HttpServerConfig {
	return &c.HttpServerConfig{
		Limits: &c.HttpServerLimit{
			PageSizeMax:     100,
			PageSizeDefault: 50,
		},
	}
}

type fakeCrewOperation struct {
	getCrewMembers    func(page, pageSize int) ([]*operation.CrewMember, int64, error)
	getCrewMemberById func(id uint) (*operation.CrewMember, error)
	toggleCrewStatus  func(id uint) (*operation.CrewMember, error)
	getAvailableCrew  func(baseAirport string, onDate time.Time) ([]*operation.CrewMember, error)
}

func (f *fakeCrewOperation) GetCrewMembers(page, pageSize int) ([]*operation.CrewMember, int64, error) {
	return f.getCrewMembers(page, pageSize)
}

func (f *fakeCrewOperation) GetCrewMemberById(id uint) (*operation.CrewMember, error) {
	return f.getCrewMemberById(id)
}

func (f *fakeCrewOperation) ToggleCrewStatus(id uint) (*operation.CrewMember, error) {
	return f.toggleCrewStatus(id)
}

func (f *fakeCrewOperation) GetAvailableCrew(baseAirport string, onDate time.Time) ([]*operation.CrewMember, error) {
	return f.getAvailableCrew(baseAirport, onDate)
}

type fakeTimingOperation struct {
	checkIn             func(crewCode string, restMinutes *int) (*operation.CrewTiming, error)
	checkOut            func(crewCode string) (*operation.CrewTiming, error)
	getTimingByCrewCode func(crewCode string) (*operation.CrewTiming, error)
}

func (f *fakeTimingOperation) CheckIn(crewCode string, restMinutes *int) (*operation.CrewTiming, error) {
	return f.checkIn(crewCode, restMinutes)
}

func (f *fakeTimingOperation) CheckOut(crewCode string) (*operation.CrewTiming, error) {
	return f.checkOut(crewCode)
}

func (f *fakeTimingOperation) GetTimingByCrewCode(crewCode string) (*operation.CrewTiming, error) {
	return f.getTimingByCrewCode(crewCode)
}

type fakeRosterOperation struct {
	createRoster func(baseAirport string, flightId uint) (*operation.RosterResult, error)
	getRosters   func() ([]*operation.RosterAssignment, error)
}

func (f *fakeRosterOperation) CreateRoster(baseAirport string, flightId uint) (*operation.RosterResult, error) {
	return f.createRoster(baseAirport, flightId)
}

func (f *fakeRosterOperation) GetRosters() ([]*operation.RosterAssignment, error) {
	return f.getRosters()
}

type fakeHealthOperation struct {
	ping      func(ctx context.Context) error
	poolStats func() map[string]interface{}
}

func (f *fakeHealthOperation) Ping(ctx context.Context) error {
	return f.ping(ctx)
}

func (f *fakeHealthOperation) PoolStats() map[string]interface{} {
	return f.poolStats()
}
