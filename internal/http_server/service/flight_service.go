// Package service
package service

import (
	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type FlightService struct {
	logger          log.LoggerInterface
	config          *c.HttpServerConfig
	flightOperation operation.FlightOperationInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	flightOperation operation.FlightOperationInterface,
) *FlightService {
	return &FlightService{
		logger:          logger,
		config:          config,
		flightOperation: flightOperation,
	}
}

var SuccessGetFlights = ApiStatus{StatusName: "GET_FLIGHTS", Description: "flights fetched", HttpCode: Ok}

func (flightService *FlightService) GetFlights(req *RequestGetFlights) *ApiResponse[ResponseGetFlights] {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = flightService.config.Limits.PageSizeDefault
	}
	if req.Limit > flightService.config.Limits.PageSizeMax {
		req.Limit = flightService.config.Limits.PageSizeMax
	}
	flights, total, err := flightService.flightOperation.GetFlights(req.Page, req.Limit)
	if err != nil {
		flightService.logger.ErrorF("FlightService.GetFlights query error: %v", err)
		return NewApiResponse[ResponseGetFlights](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &ResponseGetFlights{
		Data: flights,
		Meta: PageMeta{Page: req.Page, Limit: req.Limit, Total: total},
	})
}
