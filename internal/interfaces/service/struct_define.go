// Package service
package service

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam     = ApiStatus{"PARAM_ERROR", "invalid parameter", BadRequest}
	ErrLackParam        = ApiStatus{"PARAM_LACK_ERROR", "missing parameter", BadRequest}
	ErrDatabaseFail     = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrCrewNotFound     = ApiStatus{"CREW_NOT_FOUND", "crew member not found", NotFound}
	ErrTimingNotFound   = ApiStatus{"TIMING_NOT_FOUND", "crew timing record not found", NotFound}
	ErrFlightNotFound   = ApiStatus{"FLIGHT_NOT_FOUND", "flight does not exist", BadRequest}
	ErrTimingRefetch    = ApiStatus{"TIMING_REFETCH_FAILED", "failed to fetch updated timing row", ServerInternalError}
	ErrRosterIncomplete = ApiStatus{"ROSTER_CREW_CHANGED", "failed to fetch selected crew details", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError maps operation errors onto API statuses. Errors
// carrying their own detail (insufficient crew, integrity violations) keep
// that detail in the response message.
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	var insufficientCrew *operation.InsufficientCrewError
	var integrity *operation.IntegrityError
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, operation.ErrCrewNotFound):
		return nil, NewApiResponse[T](&ErrCrewNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrTimingNotFound):
		return nil, NewApiResponse[T](&ErrTimingNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewApiResponse[T](&ErrFlightNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrTimingRefetch):
		return nil, NewApiResponse[T](&ErrTimingRefetch, Unsatisfied, nil)
	case errors.Is(err, operation.ErrCrewSetChanged):
		return nil, NewApiResponse[T](&ErrRosterIncomplete, Unsatisfied, nil)
	case errors.As(err, &insufficientCrew):
		status := ApiStatus{"INSUFFICIENT_CREW", insufficientCrew.Error(), BadRequest}
		return nil, NewApiResponse[T](&status, Unsatisfied, nil)
	case errors.As(err, &integrity):
		status := ApiStatus{"INTEGRITY_VIOLATION", integrity.Error(), BadRequest}
		return nil, NewApiResponse[T](&status, Unsatisfied, nil)
	default:
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	}
}
