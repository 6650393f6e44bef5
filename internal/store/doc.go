// Package store provides SQLite-backed draw history.
//
// The store is an append-only record of past draws:
//   - Draws: when a draw ran, for which roster, with which strategy
//   - Draw Pairs: the giver/recipient pairs of each draw
//
// History exists for two callers. The history command lists draws (and,
// on explicit request, reveals one draw's pairs). The draw command reads
// recent pairs back as exclusions, so nobody gets the same recipient two
// years running.
//
// All queries order results deterministically: listings by drawn_at and
// then id, pairs by giver, each with COLLATE BINARY. Identical databases
// produce identical output.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
