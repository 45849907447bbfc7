package database

import (
	"context"
	"errors"
	"time"

	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimingOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewTimingOperation(db *gorm.DB, queryTimeout time.Duration) *TimingOperation {
	return &TimingOperation{db: db, queryTimeout: queryTimeout}
}

func (timingOperation *TimingOperation) GetTimingByCrewCode(crewCode string) (timing *CrewTiming, err error) {
	timing = &CrewTiming{}
	ctx, cancel := context.WithTimeout(context.Background(), timingOperation.queryTimeout)
	defer cancel()
	err = timingOperation.db.WithContext(ctx).
		Where("crew_code = ?", utils.NormalizeCode(crewCode)).
		First(timing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrTimingNotFound
	}
	return
}

// CheckIn upserts the timing row keyed by crew_code in a single statement,
// so a concurrent check-in on the same code cannot lose an update. The new
// check-in clears any previous checkout and rest deadline,
// rest_time_minutes survives unless a new value was supplied.
func (timingOperation *TimingOperation) CheckIn(crewCode string, restMinutes *int) (timing *CrewTiming, err error) {
	crewCode = utils.NormalizeCode(crewCode)
	now := time.Now().UTC().Truncate(time.Second)
	checkInDate, checkInTime := utils.SplitDateTime(now)

	restValue := 0
	if restMinutes != nil {
		restValue = *restMinutes
	}
	row := &CrewTiming{
		CrewCode:        crewCode,
		CheckInDate:     &checkInDate,
		CheckInTime:     &checkInTime,
		RestTimeMinutes: restValue,
	}

	assignments := map[string]interface{}{
		"check_in_date":   checkInDate,
		"check_in_time":   checkInTime,
		"check_out_date":  nil,
		"check_out_time":  nil,
		"rest_until_date": nil,
		"rest_until_time": nil,
		"updated_at":      now,
	}
	if restMinutes != nil {
		assignments["rest_time_minutes"] = *restMinutes
	}

	ctx, cancel := context.WithTimeout(context.Background(), timingOperation.queryTimeout)
	defer cancel()
	err = timingOperation.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crew_code"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	timing, err = timingOperation.GetTimingByCrewCode(crewCode)
	if errors.Is(err, ErrTimingNotFound) {
		return nil, ErrTimingRefetch
	}
	return
}

// CheckOut stamps the duty end and derives the rest deadline from the
// stored rest_time_minutes. The check-in fields stay untouched.
func (timingOperation *TimingOperation) CheckOut(crewCode string) (timing *CrewTiming, err error) {
	crewCode = utils.NormalizeCode(crewCode)
	row, err := timingOperation.GetTimingByCrewCode(crewCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	checkOutDate, checkOutTime := utils.SplitDateTime(now)

	updates := map[string]interface{}{
		"check_out_date":  checkOutDate,
		"check_out_time":  checkOutTime,
		"rest_until_date": nil,
		"rest_until_time": nil,
		"updated_at":      now,
	}
	if row.RestTimeMinutes > 0 {
		restUntil := now.Add(time.Duration(row.RestTimeMinutes) * time.Minute)
		restUntilDate, restUntilTime := utils.SplitDateTime(restUntil)
		updates["rest_until_date"] = restUntilDate
		updates["rest_until_time"] = restUntilTime
	}

	ctx, cancel := context.WithTimeout(context.Background(), timingOperation.queryTimeout)
	defer cancel()
	err = timingOperation.db.WithContext(ctx).
		Model(&CrewTiming{}).
		Where("crew_code = ?", crewCode).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	timing, err = timingOperation.GetTimingByCrewCode(crewCode)
	if errors.Is(err, ErrTimingNotFound) {
		return nil, ErrTimingRefetch
	}
	return
}
