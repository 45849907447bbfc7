package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RosterOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewRosterOperation(db *gorm.DB, queryTimeout time.Duration) *RosterOperation {
	return &RosterOperation{db: db, queryTimeout: queryTimeout}
}

// CreateRoster assigns the four lowest-id active crew members at the base
// to the flight. The candidate rows stay locked from selection through
// commit, so two concurrent assignments for the same base can never pick
// overlapping crew sets: the second transaction blocks on the lock and
// then sees the already-reduced active set.
func (rosterOperation *RosterOperation) CreateRoster(baseAirport string, flightId uint) (result *RosterResult, err error) {
	base := utils.NormalizeCode(baseAirport)
	ctx, cancel := context.WithTimeout(context.Background(), rosterOperation.queryTimeout)
	defer cancel()

	// validate the flight before opening the transaction, nothing has been
	// written at this point
	err = rosterOperation.db.WithContext(ctx).
		Select("id").
		Where("id = ?", flightId).
		First(&Flight{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}

	result = &RosterResult{FlightId: flightId, BaseAirport: base}
	err = rosterOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		selectTx := tx
		// sqlite has no FOR UPDATE, its writers serialize on the file lock
		if tx.Dialector.Name() != "sqlite" {
			selectTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var crewIds []uint
		if err := selectTx.Model(&CrewMember{}).
			Where("base_airport = ? AND status = ?", base, StatusActive).
			Order("id").
			Limit(global.RosterCrewSize).
			Pluck("id", &crewIds).Error; err != nil {
			return err
		}
		if len(crewIds) < global.RosterCrewSize {
			return &InsufficientCrewError{BaseAirport: base, Needed: global.RosterCrewSize - len(crewIds)}
		}

		crews := make([]*CrewMember, 0, len(crewIds))
		if err := tx.Where("id IN ?", crewIds).Order("id").Find(&crews).Error; err != nil {
			return err
		}
		if len(crews) < global.RosterCrewSize {
			// the lock should make this impossible
			return ErrCrewSetChanged
		}

		now := time.Now().UTC()
		result.RosterName = fmt.Sprintf("%s_roster_%s", base, now.Format("20060102150405"))

		for _, crew := range crews {
			roleOnFlight := crew.Rank
			if roleOnFlight == "" {
				roleOnFlight = string(crew.Role)
			}
			if roleOnFlight == "" {
				roleOnFlight = "Crew"
			}
			assignment := &RosterAssignment{
				RosterName:   result.RosterName,
				BaseAirport:  base,
				FlightId:     flightId,
				CrewId:       crew.ID,
				RoleOnFlight: roleOnFlight,
				AssignedAt:   now,
				Status:       "assigned",
				CreatedBy:    global.RosterCreatedBy,
			}
			if err := tx.Create(assignment).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) ||
					errors.Is(err, gorm.ErrDuplicatedKey) ||
					errors.Is(err, gorm.ErrCheckConstraintViolated) {
					return &IntegrityError{Cause: err}
				}
				return err
			}
			if err := tx.Model(crew).Update("status", StatusInactive).Error; err != nil {
				return err
			}
			crew.Status = StatusInactive
		}

		result.AssignedCrew = crews
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (rosterOperation *RosterOperation) GetRosters() (rosters []*RosterAssignment, err error) {
	rosters = make([]*RosterAssignment, 0)
	ctx, cancel := context.WithTimeout(context.Background(), rosterOperation.queryTimeout)
	defer cancel()
	err = rosterOperation.db.WithContext(ctx).
		Order("assigned_at DESC").
		Find(&rosters).Error
	return
}
