// Package controller
package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type CrewControllerInterface interface {
	GetCrewMembers(ctx echo.Context) error
	ToggleCrewStatus(ctx echo.Context) error
	CrewCheckIn(ctx echo.Context) error
	CrewCheckOut(ctx echo.Context) error
	GetCrewAvailability(ctx echo.Context) error
}

type CrewController struct {
	logger      log.LoggerInterface
	crewService CrewServiceInterface
}

func NewCrewController(logger log.LoggerInterface, crewService CrewServiceInterface) *CrewController {
	return &CrewController{
		logger:      logger,
		crewService: crewService,
	}
}

func (controller *CrewController) GetCrewMembers(ctx echo.Context) error {
	data := &RequestGetCrewMembers{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CrewController.GetCrewMembers bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.crewService.GetCrewMembers(data).Response(ctx)
}

func (controller *CrewController) ToggleCrewStatus(ctx echo.Context) error {
	data := &RequestToggleCrewStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CrewController.ToggleCrewStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.crewService.ToggleCrewStatus(data).Response(ctx)
}

func (controller *CrewController) CrewCheckIn(ctx echo.Context) error {
	data := &RequestCrewCheckIn{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CrewController.CrewCheckIn bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.crewService.CrewCheckIn(data).Response(ctx)
}

func (controller *CrewController) CrewCheckOut(ctx echo.Context) error {
	data := &RequestCrewCheckOut{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CrewController.CrewCheckOut bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.crewService.CrewCheckOut(data).Response(ctx)
}

func (controller *CrewController) GetCrewAvailability(ctx echo.Context) error {
	data := &RequestCrewAvailability{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CrewController.GetCrewAvailability bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.crewService.GetCrewAvailability(data).Response(ctx)
}
