// Package rank_test provides a benchmark for Rank against a synthetic
// hub-and-spoke network, sized to exercise the shoulder-day scan loop.
package rank_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/katalvlaran/rendezvous/connindex"
	"github.com/katalvlaran/rendezvous/rank"
)

// benchNetworkSizes are the spoke counts to benchmark.
var benchNetworkSizes = []int{10, 50, 200}

func buildBenchStore(b *testing.B, spokes int) (*connindex.Store, []rank.Origin) {
	b.Helper()

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	store := connindex.New(start, connindex.WithMaxDays(30))
	store.RegisterAirport("HUB")

	origins := make([]rank.Origin, 0, spokes)
	for i := 0; i < spokes; i++ {
		code := fmt.Sprintf("A%03d", i)
		store.RegisterAirport(code)
		origins = append(origins, rank.Origin{Code: code, Count: 1})

		if err := store.SetConnection(connindex.Connection{
			Origin: code, Destination: "HUB",
			Departure: date("2025-01-10"), Stops: i % 3,
		}); err != nil {
			b.Fatalf("setup: %v", err)
		}
		if err := store.SetConnection(connindex.Connection{
			Origin: "HUB", Destination: code,
			Departure: date("2025-01-15"), Stops: i % 3,
		}); err != nil {
			b.Fatalf("setup: %v", err)
		}
	}

	return store, origins
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchNetworkSizes {
		n := n
		b.Run(fmt.Sprintf("spokes=%d", n), func(b *testing.B) {
			// Stage 2 (Prepare): hub-and-spoke network of n origins
			store, origins := buildBenchStore(b, n)

			b.ResetTimer()
			// Stage 3 (Execute)
			for i := 0; i < b.N; i++ {
				_, err := rank.Rank(store, origins, date("2025-01-10"), date("2025-01-15"), 2, 2, 0)
				if err != nil {
					b.Fatalf("rank: %v", err)
				}
			}
		})
	}
}
