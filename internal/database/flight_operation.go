package database

import (
	"context"
	"errors"
	"time"

	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlights(page, pageSize int) (flights []*Flight, total int64, err error) {
	flights = make([]*Flight, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	flightOperation.db.WithContext(ctx).Model(&Flight{}).Count(&total)
	err = flightOperation.db.WithContext(ctx).
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetFlightById(id uint) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}
