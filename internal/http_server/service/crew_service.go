// Package service
package service

import (
	"time"

	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/service"
	"github.com/skyharbor-dev/crew-roster/internal/metrics"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

type CrewService struct {
	logger          log.LoggerInterface
	config          *c.HttpServerConfig
	crewOperation   operation.CrewOperationInterface
	timingOperation operation.CrewTimingOperationInterface
	metrics         *metrics.Metrics
}

func NewCrewService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	crewOperation operation.CrewOperationInterface,
	timingOperation operation.CrewTimingOperationInterface,
	metrics *metrics.Metrics,
) *CrewService {
	return &CrewService{
		logger:          logger,
		config:          config,
		crewOperation:   crewOperation,
		timingOperation: timingOperation,
		metrics:         metrics,
	}
}

// NewTimingModel renders a timing row for the wire: time-of-day fields
// zero-padded, rest minutes duplicated as a duration string, timestamps
// as ISO-8601.
func NewTimingModel(timing *operation.CrewTiming) *TimingModel {
	return &TimingModel{
		Id:              timing.ID,
		CrewCode:        timing.CrewCode,
		CheckInDate:     utils.FormatDate(timing.CheckInDate),
		CheckInTime:     utils.FormatTimeLike(timing.CheckInTime),
		CheckOutDate:    utils.FormatDate(timing.CheckOutDate),
		CheckOutTime:    utils.FormatTimeLike(timing.CheckOutTime),
		RestUntilDate:   utils.FormatDate(timing.RestUntilDate),
		RestUntilTime:   utils.FormatTimeLike(timing.RestUntilTime),
		RestTimeMinutes: timing.RestTimeMinutes,
		RestTimeHMS:     utils.MinutesToHMS(timing.RestTimeMinutes),
		CreatedAt:       timing.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       timing.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

var SuccessGetCrewMembers = ApiStatus{StatusName: "GET_CREW_MEMBERS", Description: "crew members fetched", HttpCode: Ok}

func (crewService *CrewService) GetCrewMembers(req *RequestGetCrewMembers) *ApiResponse[ResponseGetCrewMembers] {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = crewService.config.Limits.PageSizeDefault
	}
	if req.Limit > crewService.config.Limits.PageSizeMax {
		req.Limit = crewService.config.Limits.PageSizeMax
	}
	crews, total, err := crewService.crewOperation.GetCrewMembers(req.Page, req.Limit)
	if err != nil {
		crewService.logger.ErrorF("CrewService.GetCrewMembers query error: %v", err)
		crewService.metrics.OperationErrors.WithLabelValues("get_crew_members").Inc()
		return NewApiResponse[ResponseGetCrewMembers](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetCrewMembers, Unsatisfied, &ResponseGetCrewMembers{
		Data: crews,
		Meta: PageMeta{Page: req.Page, Limit: req.Limit, Total: total},
	})
}

var SuccessToggleCrewStatus = ApiStatus{StatusName: "TOGGLE_CREW_STATUS", Description: "crew status toggled", HttpCode: Ok}

func (crewService *CrewService) ToggleCrewStatus(req *RequestToggleCrewStatus) *ApiResponse[ResponseToggleCrewStatus] {
	if req.CrewId <= 0 {
		return NewApiResponse[ResponseToggleCrewStatus](&ErrIllegalParam, Unsatisfied, nil)
	}
	crew, res := CallDBFuncAndCheckError[operation.CrewMember, ResponseToggleCrewStatus](func() (*operation.CrewMember, error) {
		return crewService.crewOperation.ToggleCrewStatus(req.CrewId)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessToggleCrewStatus, Unsatisfied, (*ResponseToggleCrewStatus)(crew))
}

var SuccessCrewCheckIn = ApiStatus{StatusName: "CREW_CHECKED_IN", Description: "crew checked in", HttpCode: Ok}

func (crewService *CrewService) CrewCheckIn(req *RequestCrewCheckIn) *ApiResponse[ResponseCrewTiming] {
	if utils.NormalizeCode(req.CrewCode) == "" {
		return NewApiResponse[ResponseCrewTiming](&ErrLackParam, Unsatisfied, nil)
	}
	timing, res := CallDBFuncAndCheckError[operation.CrewTiming, ResponseCrewTiming](func() (*operation.CrewTiming, error) {
		return crewService.timingOperation.CheckIn(req.CrewCode, req.RestTimeMinutes)
	})
	if res != nil {
		crewService.metrics.OperationErrors.WithLabelValues("crew_checkin").Inc()
		return res
	}
	crewService.metrics.CrewCheckIns.Inc()
	return NewApiResponse(&SuccessCrewCheckIn, Unsatisfied, &ResponseCrewTiming{
		Status: "checked_in",
		Timing: NewTimingModel(timing),
	})
}

var SuccessCrewCheckOut = ApiStatus{StatusName: "CREW_CHECKED_OUT", Description: "crew checked out", HttpCode: Ok}

func (crewService *CrewService) CrewCheckOut(req *RequestCrewCheckOut) *ApiResponse[ResponseCrewTiming] {
	if utils.NormalizeCode(req.CrewCode) == "" {
		return NewApiResponse[ResponseCrewTiming](&ErrLackParam, Unsatisfied, nil)
	}
	timing, res := CallDBFuncAndCheckError[operation.CrewTiming, ResponseCrewTiming](func() (*operation.CrewTiming, error) {
		return crewService.timingOperation.CheckOut(req.CrewCode)
	})
	if res != nil {
		crewService.metrics.OperationErrors.WithLabelValues("crew_checkout").Inc()
		return res
	}
	crewService.metrics.CrewCheckOuts.Inc()
	return NewApiResponse(&SuccessCrewCheckOut, Unsatisfied, &ResponseCrewTiming{
		Status: "checked_out",
		Timing: NewTimingModel(timing),
	})
}

var SuccessGetCrewAvailability = ApiStatus{StatusName: "GET_CREW_AVAILABILITY", Description: "crew availability fetched", HttpCode: Ok}

func (crewService *CrewService) GetCrewAvailability(req *RequestCrewAvailability) *ApiResponse[ResponseCrewAvailability] {
	airport := utils.NormalizeCode(req.Airport)
	if airport == "" {
		return NewApiResponse[ResponseCrewAvailability](&ErrLackParam, Unsatisfied, nil)
	}
	onDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return NewApiResponse[ResponseCrewAvailability](&ErrIllegalParam, Unsatisfied, nil)
	}
	crews, err := crewService.crewOperation.GetAvailableCrew(airport, onDate)
	if err != nil {
		crewService.logger.ErrorF("CrewService.GetCrewAvailability query error: %v", err)
		crewService.metrics.OperationErrors.WithLabelValues("crew_availability").Inc()
		return NewApiResponse[ResponseCrewAvailability](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetCrewAvailability, Unsatisfied, &ResponseCrewAvailability{
		Airport: airport,
		Date:    req.Date,
		Data:    crews,
	})
}
