// Package service
package service

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
)

type RosterServiceInterface interface {
	CreateRoster(req *RequestCreateRoster) *ApiResponse[ResponseCreateRoster]
	GetRosters(req *RequestGetRosters) *ApiResponse[ResponseGetRosters]
}

type RequestCreateRoster struct {
	BaseAirport string `param:"base_airport"`
	FlightId    uint   `json:"flight_id"`
}

type ResponseCreateRoster struct {
	Message      string                  `json:"message"`
	RosterName   string                  `json:"roster_name"`
	FlightId     uint                    `json:"flight_id"`
	BaseAirport  string                  `json:"base_airport"`
	AssignedCrew []*operation.CrewMember `json:"assigned_crew"`
}

type RequestGetRosters struct{}

type ResponseGetRosters struct {
	Data []*operation.RosterAssignment `json:"data"`
}
