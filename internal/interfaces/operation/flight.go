// Package operation
package operation

type FlightOperationInterface interface {
	// GetFlights returns one page of flights together with the total row count.
	GetFlights(page, pageSize int) (flights []*Flight, total int64, err error)
	// GetFlightById returns ErrFlightNotFound when no row matches.
	GetFlightById(id uint) (flight *Flight, err error)
}
