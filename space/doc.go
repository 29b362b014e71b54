// Package space provides the spatial structures agents live on: a single
// occupancy grid, a multi occupancy grid and a continuous 2D space.
//
// Core goals:
//   - Track agent positions by unique id so lookups never depend on agent
//     value comparability
//   - Support torus and bounded topologies behind the same API
//   - Provide Moore and von Neumann neighborhood queries with arbitrary
//     radius for grids, and Euclidean radius queries for continuous space
//
// All structures are safe for concurrent use; mutating calls take a write
// lock, queries a read lock. Under simultaneous activation agents should
// confine moves to the advance phase so query results stay stable within the
// step phase.
package space
