// Package service
package service

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
)

type FlightServiceInterface interface {
	GetFlights(req *RequestGetFlights) *ApiResponse[ResponseGetFlights]
}

type RequestGetFlights struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type ResponseGetFlights struct {
	Data []*operation.Flight `json:"data"`
	Meta PageMeta            `json:"meta"`
}
