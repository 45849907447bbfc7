// Package service
package service

import (
	"context"
	"time"

	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
)

type ServerService struct {
	logger          log.LoggerInterface
	healthOperation operation.HealthOperationInterface
}

func NewServerService(
	logger log.LoggerInterface,
	healthOperation operation.HealthOperationInterface,
) *ServerService {
	return &ServerService{
		logger:          logger,
		healthOperation: healthOperation,
	}
}

var SuccessHealthCheck = ApiStatus{StatusName: "HEALTH_CHECK", Description: "service healthy", HttpCode: Ok}

func (serverService *ServerService) GetHealth(_ *RequestHealthCheck) *ApiResponse[ResponseHealthCheck] {
	response := &ResponseHealthCheck{
		Status:    "healthy",
		PoolStats: serverService.healthOperation.PoolStats(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := serverService.healthOperation.Ping(context.Background()); err != nil {
		serverService.logger.ErrorF("ServerService.GetHealth database ping failed: %v", err)
		response.Status = "unhealthy"
		status := ApiStatus{StatusName: "HEALTH_CHECK", Description: "database unreachable", HttpCode: ServerInternalError}
		return NewApiResponse(&status, Unsatisfied, response)
	}
	return NewApiResponse(&SuccessHealthCheck, Unsatisfied, response)
}
