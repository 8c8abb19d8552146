// Package rendezvous ranks candidate meeting destinations for a group of
// travelers scattered across many home airports.
//
// What is rendezvous?
//
//	A pure, in-memory computational core that brings together:
//
//	  - A bit-encoded connection index (connindex) — stores, for every
//	    (day, airport, stop count), which other airports reach it
//	  - A ranking engine (rank) — scores every candidate airport by how
//	    many weighted travelers it serves within a shoulder-night budget
//	  - A dense airport registry (airport) — maps codes to small integer
//	    indices so the index above can use bit vectors instead of maps
//
// Why this shape?
//
//   - No I/O — the core never opens a socket, reads a file, or writes a
//     log; callers own connection data, ingestion, and persistence
//   - Thread-safe — connindex.Store is safe for concurrent readers while
//     a single writer populates it
//   - Set-algebra at the core — availability, stop-count scoring, and
//     shoulder-night accounting all reduce to AND/OR/NOT over bit
//     vectors (internal/bitvec), keeping the hot path allocation-light
//
// Package layout:
//
//	internal/bitvec/ — AND/OR/NOT/popcount bit-vector primitives
//	airport/         — code <-> dense index registry
//	connindex/       — the bit-encoded connection index itself
//	rank/            — Rank, the ranking engine built on top of it
//
// Quick example: Planner wires a Store and Rank together behind one call.
//
//	p := rendezvous.NewPlanner(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
//	p.AddConnection(connindex.Connection{...})
//	results, err := p.Rank(origins, meetingStart, meetingEnd, 1, 1, 0)
package rendezvous
