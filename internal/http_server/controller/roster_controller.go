// Package controller
package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type RosterControllerInterface interface {
	CreateRoster(ctx echo.Context) error
	GetRosters(ctx echo.Context) error
}

type RosterController struct {
	logger        log.LoggerInterface
	rosterService RosterServiceInterface
}

func NewRosterController(logger log.LoggerInterface, rosterService RosterServiceInterface) *RosterController {
	return &RosterController{
		logger:        logger,
		rosterService: rosterService,
	}
}

func (controller *RosterController) CreateRoster(ctx echo.Context) error {
	data := &RequestCreateRoster{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RosterController.CreateRoster bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.rosterService.CreateRoster(data).Response(ctx)
}

func (controller *RosterController) GetRosters(ctx echo.Context) error {
	return controller.rosterService.GetRosters(&RequestGetRosters{}).Response(ctx)
}
