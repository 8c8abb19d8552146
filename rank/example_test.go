package rank_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/rendezvous/connindex"
	"github.com/katalvlaran/rendezvous/rank"
)

// ExampleRank builds a tiny three-airport network and ranks candidate
// meeting destinations for two weighted origins.
func ExampleRank() {
	start, _ := time.Parse("2006-01-02", "2025-01-01")
	store := connindex.New(start)

	conns := []connindex.Connection{
		{Origin: "AAA", Destination: "HUB", Departure: date("2025-01-10"), Stops: 0},
		{Origin: "BBB", Destination: "HUB", Departure: date("2025-01-10"), Stops: 0},
		{Origin: "HUB", Destination: "AAA", Departure: date("2025-01-15"), Stops: 0},
		{Origin: "HUB", Destination: "BBB", Departure: date("2025-01-15"), Stops: 0},
	}
	for _, c := range conns {
		if err := store.SetConnection(c); err != nil {
			fmt.Println("setup error:", err)
			return
		}
	}

	results, err := rank.Rank(
		store,
		[]rank.Origin{{Code: "AAA", Count: 1}, {Code: "BBB", Count: 1}},
		date("2025-01-10"), date("2025-01-15"),
		1, 1, 1,
	)
	if err != nil {
		fmt.Println("rank error:", err)
		return
	}

	top := results[0]
	fmt.Println(top.Code, top.AvailableOrigins, top.TotalStops)
	// Output: HUB 4 0
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}
