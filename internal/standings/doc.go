// Package standings aggregates game results into per-team season records.
//
// Compute walks the results in order and keeps one Record per team, listed in
// order of first appearance. A tie counts as half a win in the win percentage.
// Sort orders records by win percentage (then wins, then name), by team name, or
// by point differential, and WriteTable renders them as a rounded text table.
package standings
