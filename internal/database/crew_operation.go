package database

import (
	"context"
	"errors"
	"time"

	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"gorm.io/gorm"
)

type CrewOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCrewOperation(db *gorm.DB, queryTimeout time.Duration) *CrewOperation {
	return &CrewOperation{db: db, queryTimeout: queryTimeout}
}

func (crewOperation *CrewOperation) GetCrewMembers(page, pageSize int) (crews []*CrewMember, total int64, err error) {
	crews = make([]*CrewMember, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	crewOperation.db.WithContext(ctx).Model(&CrewMember{}).Count(&total)
	err = crewOperation.db.WithContext(ctx).
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&crews).Error
	return
}

func (crewOperation *CrewOperation) GetCrewMemberById(id uint) (crew *CrewMember, err error) {
	crew = &CrewMember{}
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	err = crewOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(crew).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrCrewNotFound
	}
	return
}

// ToggleCrewStatus flips the status in one conditional statement so two
// concurrent toggles on the same row cannot lose an update. Legacy rows
// may hold truthy variants ("available", "1", "true"), all of which count
// as active.
func (crewOperation *CrewOperation) ToggleCrewStatus(id uint) (crew *CrewMember, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	result := crewOperation.db.WithContext(ctx).
		Model(&CrewMember{}).
		Where("id = ?", id).
		Update("status", gorm.Expr(
			"CASE WHEN LOWER(TRIM(status)) IN ('active','available','1','true') THEN ? ELSE ? END",
			StatusInactive, StatusActive,
		))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCrewNotFound
	}
	return crewOperation.GetCrewMemberById(id)
}

func (crewOperation *CrewOperation) GetAvailableCrew(baseAirport string, onDate time.Time) (crews []*CrewMember, err error) {
	crews = make([]*CrewMember, 0)
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	err = crewOperation.db.WithContext(ctx).
		Joins("LEFT JOIN crew_timing ON crew_timing.crew_code = crew_members.crew_code").
		Where("crew_members.base_airport = ? AND crew_members.status = ?", baseAirport, StatusActive).
		Where("crew_timing.rest_until_date IS NULL OR crew_timing.rest_until_date <= ?", onDate).
		Order("crew_members.id").
		Find(&crews).Error
	return
}
