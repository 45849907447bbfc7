// Package controller
package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type ServerControllerInterface interface {
	GetHealth(ctx echo.Context) error
}

type ServerController struct {
	logger        log.LoggerInterface
	serverService ServerServiceInterface
}

func NewServerController(logger log.LoggerInterface, serverService ServerServiceInterface) *ServerController {
	return &ServerController{
		logger:        logger,
		serverService: serverService,
	}
}

func (controller *ServerController) GetHealth(ctx echo.Context) error {
	return controller.serverService.GetHealth(&RequestHealthCheck{}).Response(ctx)
}
