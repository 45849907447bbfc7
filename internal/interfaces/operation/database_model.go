// Package operation
package operation

import (
	"time"
)

type CrewRole string

const (
	RolePilot CrewRole = "pilot"
	RoleCabin CrewRole = "cabin"
)

type CrewStatus string

const (
	StatusActive   CrewStatus = "active"
	StatusInactive CrewStatus = "inactive"
)

type CrewMember struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	CrewCode          string     `gorm:"size:16;uniqueIndex" json:"crew_code"`
	FullName          string     `gorm:"size:128" json:"full_name"`
	Role              CrewRole   `gorm:"size:16" json:"role"`
	Rank              string     `gorm:"size:64" json:"rank"`
	BaseAirport       string     `gorm:"size:8;index" json:"base_airport"`
	Qualifications    string     `gorm:"type:text" json:"qualifications"`
	Phone             string     `gorm:"size:32" json:"phone"`
	Email             string     `gorm:"size:128" json:"email"`
	PassportNo        string     `gorm:"size:32" json:"passport_no"`
	MedicalValidUntil *time.Time `gorm:"type:date" json:"medical_valid_until"`
	Status            CrewStatus `gorm:"size:16;default:active" json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

// CrewTiming holds one row per crew code. DATE columns map to *time.Time,
// TIME columns to *string because drivers disagree on how TIME comes back
// (see utils.FormatTimeLike).
type CrewTiming struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	CrewCode        string     `gorm:"size:16;uniqueIndex" json:"crew_code"`
	CheckInDate     *time.Time `gorm:"type:date" json:"check_in_date"`
	CheckInTime     *string    `gorm:"type:time" json:"check_in_time"`
	CheckOutDate    *time.Time `gorm:"type:date" json:"check_out_date"`
	CheckOutTime    *string    `gorm:"type:time" json:"check_out_time"`
	RestUntilDate   *time.Time `gorm:"type:date" json:"rest_until_date"`
	RestUntilTime   *string    `gorm:"type:time" json:"rest_until_time"`
	RestTimeMinutes int        `json:"rest_time_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (CrewTiming) TableName() string { return "crew_timing" }

type RosterAssignment struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	RosterName   string    `gorm:"size:64;index" json:"roster_name"`
	BaseAirport  string    `gorm:"size:8" json:"base_airport"`
	FlightId     uint      `gorm:"index" json:"flight_id"`
	CrewId       uint      `gorm:"index" json:"crew_id"`
	RoleOnFlight string    `gorm:"size:64" json:"role_on_flight"`
	AssignedAt   time.Time `json:"assigned_at"`
	Status       string    `gorm:"size:16" json:"status"`
	CreatedBy    string    `gorm:"size:32" json:"created_by"`
}

func (RosterAssignment) TableName() string { return "rosters" }

// Flight is owned by the flight planning system. This service only checks
// existence and serves read-only listings, it never writes the table.
type Flight struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	FlightNumber  string     `gorm:"size:16" json:"flight_number"`
	Origin        string     `gorm:"size:8" json:"origin"`
	Destination   string     `gorm:"size:8" json:"destination"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Status        string     `gorm:"size:32" json:"status"`
}
