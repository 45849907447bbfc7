// Package operation
package operation

type DatabaseOperations struct {
	crewOperation   CrewOperationInterface
	timingOperation CrewTimingOperationInterface
	rosterOperation RosterOperationInterface
	flightOperation FlightOperationInterface
	healthOperation HealthOperationInterface
}

func NewDatabaseOperations(
	crewOperation CrewOperationInterface,
	timingOperation CrewTimingOperationInterface,
	rosterOperation RosterOperationInterface,
	flightOperation FlightOperationInterface,
	healthOperation HealthOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		crewOperation:   crewOperation,
		timingOperation: timingOperation,
		rosterOperation: rosterOperation,
		flightOperation: flightOperation,
		healthOperation: healthOperation,
	}
}

func (db *DatabaseOperations) CrewOperation() CrewOperationInterface {
	return db.crewOperation
}

func (db *DatabaseOperations) TimingOperation() CrewTimingOperationInterface {
	return db.timingOperation
}

func (db *DatabaseOperations) RosterOperation() RosterOperationInterface {
	return db.rosterOperation
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) HealthOperation() HealthOperationInterface {
	return db.healthOperation
}
