// Package service
package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

func TestCreateRosterSuccess(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		createRoster: func(baseAirport string, flightId uint) (*operation.RosterResult, error) {
			return &operation.RosterResult{
				RosterName:  "JFK_roster_20260901120000",
				FlightId:    flightId,
				BaseAirport: "JFK",
				AssignedCrew: []*operation.CrewMember{
					{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
				},
			}, nil
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "JFK", FlightId: 7})
	if res.HttpCode != 200 || res.Code != "ROSTER_CREATED" {
		t.Fatalf("response = %d %s; expected 200 ROSTER_CREATED", res.HttpCode, res.Code)
	}
	if res.Data.Message != "Roster created successfully" {
		t.Errorf("message = %q", res.Data.Message)
	}
	if res.Data.RosterName != "JFK_roster_20260901120000" || res.Data.FlightId != 7 {
		t.Errorf("payload = %+v", res.Data)
	}
	if len(res.Data.AssignedCrew) != 4 {
		t.Errorf("assigned crew = %d; expected 4", len(res.Data.AssignedCrew))
	}
}

func TestCreateRosterRequiresFlightId(t *testing.T) {
	rosterService := NewRosterService(testLogger, &fakeRosterOperation{}, testMetrics)

	// an absent request body leaves FlightId at its zero value
	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "JFK"})
	if res.HttpCode != 400 || res.Code != "PARAM_LACK_ERROR" {
		t.Errorf("response = %d %s; expected 400 PARAM_LACK_ERROR", res.HttpCode, res.Code)
	}
	if !strings.Contains(res.Message, "flight_id") {
		t.Errorf("message %q should name the missing field", res.Message)
	}
}

func TestCreateRosterRequiresBaseAirport(t *testing.T) {
	rosterService := NewRosterService(testLogger, &fakeRosterOperation{}, testMetrics)

	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "  ", FlightId: 7})
	if res.HttpCode != 400 || res.Code != "PARAM_LACK_ERROR" {
		t.Errorf("response = %d %s; expected 400 PARAM_LACK_ERROR", res.HttpCode, res.Code)
	}
}

func TestCreateRosterMapsInsufficientCrew(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		createRoster: func(baseAirport string, flightId uint) (*operation.RosterResult, error) {
			return nil, &operation.InsufficientCrewError{BaseAirport: "JFK", Needed: 2}
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "JFK", FlightId: 7})
	if res.HttpCode != 400 || res.Code != "INSUFFICIENT_CREW" {
		t.Fatalf("response = %d %s; expected 400 INSUFFICIENT_CREW", res.HttpCode, res.Code)
	}
	if !strings.Contains(res.Message, "need 2 more") {
		t.Errorf("message %q should carry the shortfall detail", res.Message)
	}
}

func TestCreateRosterMapsUnknownFlight(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		createRoster: func(baseAirport string, flightId uint) (*operation.RosterResult, error) {
			return nil, operation.ErrFlightNotFound
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "JFK", FlightId: 9999})
	if res.HttpCode != 400 || res.Code != "FLIGHT_NOT_FOUND" {
		t.Errorf("response = %d %s; expected 400 FLIGHT_NOT_FOUND", res.HttpCode, res.Code)
	}
}

func TestCreateRosterMapsIntegrityViolation(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		createRoster: func(baseAirport string, flightId uint) (*operation.RosterResult, error) {
			return nil, &operation.IntegrityError{Cause: errors.New("FOREIGN KEY constraint failed")}
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.CreateRoster(&RequestCreateRoster{BaseAirport: "JFK", FlightId: 7})
	if res.HttpCode != 400 || res.Code != "INTEGRITY_VIOLATION" {
		t.Fatalf("response = %d %s; expected 400 INTEGRITY_VIOLATION", res.HttpCode, res.Code)
	}
	if !strings.Contains(res.Message, "FOREIGN KEY") {
		t.Errorf("message %q should surface the constraint detail", res.Message)
	}
}

func TestGetRostersDatabaseError(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		getRosters: func() ([]*operation.RosterAssignment, error) {
			return nil, errors.New("connection reset")
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.GetRosters(&RequestGetRosters{})
	if res.HttpCode != 500 || res.Code != "DATABASE_ERROR" {
		t.Errorf("response = %d %s; expected 500 DATABASE_ERROR", res.HttpCode, res.Code)
	}
}

func TestGetRostersSuccess(t *testing.T) {
	rosterOperation := &fakeRosterOperation{
		getRosters: func() ([]*operation.RosterAssignment, error) {
			return []*operation.RosterAssignment{{RosterName: "JFK_roster_20260901120000"}}, nil
		},
	}
	rosterService := NewRosterService(testLogger, rosterOperation, testMetrics)

	res := rosterService.GetRosters(&RequestGetRosters{})
	if res.HttpCode != 200 || res.Code != "GET_ROSTERS" {
		t.Fatalf("response = %d %s; expected 200 GET_ROSTERS", res.HttpCode, res.Code)
	}
	if len(res.Data.Data) != 1 {
		t.Errorf("rosters = %d; expected 1", len(res.Data.Data))
	}
}
