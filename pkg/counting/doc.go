// Package counting computes exact answers to combinatorial counting problems.
//
// Every function is pure: no state survives a call and any scratch memory (such as the
// forbidden-adjacency table) is allocated per call, so the package is safe for concurrent use.
// Counts are returned as *big.Int and are never negative.
//
// A configuration with no valid outcome is the count 0, not an error. Errors are reserved for
// contract violations: quota slices that do not line up with the group sizes
// (ErrDimensionMismatch), placements that reference unknown people or slots, union inputs
// that describe no real sets, and arrangements of more than MaxItems items.
//
// Complexity:
//
//   - Union:                      O(k + m × k) for k sets and m intersections.
//   - WithMinimums, WithMaximums: O(number of bounded compositions × groups).
//   - ArrangementsWithForbidden:  O(2^n × n^2) time, O(2^n × n) memory.
//   - ScheduleCount:              O(number of occupancy tuples × slots).
package counting
