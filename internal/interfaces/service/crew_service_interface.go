// Package service
package service

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
)

// TimingModel is the wire form of a crew_timing row: time-of-day fields
// normalized to "HH:MM:SS", rest_time_minutes additionally rendered as a
// duration string, timestamps as ISO-8601 text.
type TimingModel struct {
	Id              uint    `json:"id"`
	CrewCode        string  `json:"crew_code"`
	CheckInDate     *string `json:"check_in_date"`
	CheckInTime     *string `json:"check_in_time"`
	CheckOutDate    *string `json:"check_out_date"`
	CheckOutTime    *string `json:"check_out_time"`
	RestUntilDate   *string `json:"rest_until_date"`
	RestUntilTime   *string `json:"rest_until_time"`
	RestTimeMinutes int     `json:"rest_time_minutes"`
	RestTimeHMS     string  `json:"rest_time_hms"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type CrewServiceInterface interface {
	GetCrewMembers(req *RequestGetCrewMembers) *ApiResponse[ResponseGetCrewMembers]
	ToggleCrewStatus(req *RequestToggleCrewStatus) *ApiResponse[ResponseToggleCrewStatus]
	CrewCheckIn(req *RequestCrewCheckIn) *ApiResponse[ResponseCrewTiming]
	CrewCheckOut(req *RequestCrewCheckOut) *ApiResponse[ResponseCrewTiming]
	GetCrewAvailability(req *RequestCrewAvailability) *ApiResponse[ResponseCrewAvailability]
}

type RequestGetCrewMembers struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type ResponseGetCrewMembers struct {
	Data []*operation.CrewMember `json:"data"`
	Meta PageMeta                `json:"meta"`
}

type RequestToggleCrewStatus struct {
	CrewId uint `param:"id"`
}

type ResponseToggleCrewStatus operation.CrewMember

type RequestCrewCheckIn struct {
	CrewCode        string `param:"crew_code"`
	RestTimeMinutes *int   `json:"rest_time_minutes"`
}

type RequestCrewCheckOut struct {
	CrewCode string `param:"crew_code"`
}

type ResponseCrewTiming struct {
	Status string       `json:"status"`
	Timing *TimingModel `json:"timing"`
}

type RequestCrewAvailability struct {
	Airport string `param:"airport"`
	Date    string `param:"date"`
}

type ResponseCrewAvailability struct {
	Airport string                  `json:"airport"`
	Date    string                  `json:"date"`
	Data    []*operation.CrewMember `json:"data"`
}
