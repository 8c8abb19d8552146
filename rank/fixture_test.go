package rank_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/rendezvous/connindex"
	"github.com/stretchr/testify/require"
)

// seedConn is one row of the end-to-end scenario fixture (SPEC_FULL.md
// §8): origin, destination, departure date, stops, and whether the
// connection arrives the day after it departs.
type seedConn struct {
	origin, destination string
	departure           string // YYYY-MM-DD
	stops               int
	arriveNextDay       bool
}

// buildFixtureStore seeds the exact four-airport, six-connection fixture
// from SPEC_FULL.md §8, starting 2025-01-01, and registers AAA, BBB, CCC,
// DDD in that order before inserting any connection (the order the worked
// example's expected indices depend on).
func buildFixtureStore(t *testing.T) *connindex.Store {
	t.Helper()

	start, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)

	store := connindex.New(start)
	for _, code := range []string{"AAA", "BBB", "CCC", "DDD"} {
		store.RegisterAirport(code)
	}

	conns := []seedConn{
		{"AAA", "CCC", "2025-01-09", 2, false},
		{"AAA", "DDD", "2025-01-10", 0, false},
		{"BBB", "CCC", "2025-01-10", 1, false},
		{"CCC", "AAA", "2025-01-15", 1, false},
		{"DDD", "AAA", "2025-01-15", 0, false},
		{"CCC", "BBB", "2025-01-16", 0, false},
	}
	for _, c := range conns {
		departure, err := time.Parse("2006-01-02", c.departure)
		require.NoError(t, err)

		require.NoError(t, store.SetConnection(connindex.Connection{
			Origin:        c.origin,
			Destination:   c.destination,
			Departure:     departure,
			Stops:         c.stops,
			ArriveNextDay: c.arriveNextDay,
		}))
	}

	return store
}
