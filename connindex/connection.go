package connindex

import "time"

// Connection is a single stored flight leg: origin, destination, a
// departure date (resolved to a day offset against the Store's start
// date), a stop count, and whether the arrival lands the following day.
//
// The effective arrival day is DayIndex(start, Departure) +
// (1 if ArriveNextDay else 0).
type Connection struct {
	// Origin is the departure airport code.
	Origin string

	// Destination is the arrival airport code.
	Destination string

	// Departure is the departure date. Only the day (midnight UTC) is
	// significant; the Store does not resolve time-of-day.
	Departure time.Time

	// Stops is the number of intermediate stops (0, 1, or 2 by default;
	// see WithMaxStops).
	Stops int

	// ArriveNextDay reports whether the connection arrives the day after
	// it departs.
	ArriveNextDay bool
}
