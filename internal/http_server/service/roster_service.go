// Package service
package service

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
	"github.com/skyharbor-dev/crew-roster/internal/metrics"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

type RosterService struct {
	logger          log.LoggerInterface
	rosterOperation operation.RosterOperationInterface
	metrics         *metrics.Metrics
}

func NewRosterService(
	logger log.LoggerInterface,
	rosterOperation operation.RosterOperationInterface,
	metrics *metrics.Metrics,
) *RosterService {
	return &RosterService{
		logger:          logger,
		rosterOperation: rosterOperation,
		metrics:         metrics,
	}
}

var (
	SuccessCreateRoster = ApiStatus{StatusName: "ROSTER_CREATED", Description: "Roster created successfully", HttpCode: Ok}
	ErrFlightIdRequired = ApiStatus{StatusName: "PARAM_LACK_ERROR", Description: "flight_id is required", HttpCode: BadRequest}
)

func (rosterService *RosterService) CreateRoster(req *RequestCreateRoster) *ApiResponse[ResponseCreateRoster] {
	if utils.NormalizeCode(req.BaseAirport) == "" {
		return NewApiResponse[ResponseCreateRoster](&ErrLackParam, Unsatisfied, nil)
	}
	if req.FlightId <= 0 {
		// an absent request body lands here as well
		return NewApiResponse[ResponseCreateRoster](&ErrFlightIdRequired, Unsatisfied, nil)
	}
	result, res := CallDBFuncAndCheckError[operation.RosterResult, ResponseCreateRoster](func() (*operation.RosterResult, error) {
		return rosterService.rosterOperation.CreateRoster(req.BaseAirport, req.FlightId)
	})
	if res != nil {
		rosterService.logger.WarnF("RosterService.CreateRoster for base %s, flight %d rejected: %s", req.BaseAirport, req.FlightId, res.Message)
		rosterService.metrics.OperationErrors.WithLabelValues("create_roster").Inc()
		return res
	}
	rosterService.metrics.RostersCreated.Inc()
	rosterService.logger.InfoF("Roster %s created for flight %d with %d crew members", result.RosterName, result.FlightId, len(result.AssignedCrew))
	return NewApiResponse(&SuccessCreateRoster, Unsatisfied, &ResponseCreateRoster{
		Message:      "Roster created successfully",
		RosterName:   result.RosterName,
		FlightId:     result.FlightId,
		BaseAirport:  result.BaseAirport,
		AssignedCrew: result.AssignedCrew,
	})
}

var SuccessGetRosters = ApiStatus{StatusName: "GET_ROSTERS", Description: "rosters fetched", HttpCode: Ok}

func (rosterService *RosterService) GetRosters(_ *RequestGetRosters) *ApiResponse[ResponseGetRosters] {
	rosters, err := rosterService.rosterOperation.GetRosters()
	if err != nil {
		rosterService.logger.ErrorF("RosterService.GetRosters query error: %v", err)
		rosterService.metrics.OperationErrors.WithLabelValues("get_rosters").Inc()
		return NewApiResponse[ResponseGetRosters](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetRosters, Unsatisfied, &ResponseGetRosters{Data: rosters})
}
