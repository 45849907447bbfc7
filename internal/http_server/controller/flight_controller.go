// Package controller
package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type FlightControllerInterface interface {
	GetFlights(ctx echo.Context) error
}

type FlightController struct {
	logger        log.LoggerInterface
	flightService FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, flightService FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:        logger,
		flightService: flightService,
	}
}

func (controller *FlightController) GetFlights(ctx echo.Context) error {
	data := &RequestGetFlights{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.flightService.GetFlights(data).Response(ctx)
}
