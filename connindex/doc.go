// Package connindex implements the bit-encoded, multi-dimensional
// connection index: the "THE CORE" data structure of SPEC_FULL.md §2.
//
// Connections are stored as two parallel 3-D arrays of bit vectors,
// outbound and inbound, indexed by [day offset][anchor airport][stop
// count]. Each cell is a bitvec.BitVec whose set bit i names the *other*
// airport of the connection:
//
//   - Outbound[d'][a][s]: bit i set iff some connection has destination a,
//     arrival day d', stops s, origin index i. Anchored on destination,
//     keyed by arrival day.
//   - Inbound[d][a][s]: bit j set iff some connection has origin a,
//     departure day d, stops s, destination index j. Anchored on origin,
//     keyed by departure day.
//
// This inversion lets the ranking engine treat "flights arriving at a
// candidate on day d'" and "flights departing a candidate on day d"
// symmetrically, each as a single bit vector lookup.
//
// Store embeds an airport.Registry: registering a new airport through
// Store.RegisterAirport grows both arrays by one anchor slot on every
// day/stop cell, as required by SPEC_FULL.md §4.1. The store is
// append-only: once a bit is set, SetConnection never clears it, and
// setting an already-set bit is a no-op.
//
// SetConnection validates stops and both day indices, in that order,
// before touching the registry or the arrays — a failed call leaves the
// store's state, including the registry, completely unchanged (§7, §9
// "Mutation safety").
package connindex
