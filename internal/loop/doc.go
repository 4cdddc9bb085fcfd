// Package loop finds the cycle a reverse-subtract sequence falls into.
//
// Detect iterates digits.Step from a starting value, remembering the index at
// which every value was first seen, until a value repeats. The suffix of the
// sequence from that index is the raw loop; Canonicalize rotates it to start
// at its minimum so that rotations of the same cycle compare equal.
//
// Termination is observed rather than proven: every sequence tried so far
// reaches a repeat quickly. Options.MaxIterations bounds the walk and Detect
// returns ErrNoLoop when the bound is hit.
package loop
