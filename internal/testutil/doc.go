// Package testutil provides shared test utilities for revloop.
//
// # Fixtures
//
//   - NineLoop, ZeroLoop - the two loops every one- and two-digit start reaches
//   - Rotations(l) - every rotation of a loop, for canonicalisation tests
//   - SampleTable() - a frequency table with ties on count
//
// # Environment Helpers
//
//   - SetupTestDir(t) - creates a temp project with a default .revloop/config.yaml
//   - WriteTestFile(t, base, path, content) - writes a file in the test dir
//   - ContextWithTestDeadline(t, fallback) - a context bounded by the test deadline
//
// # Assertions
//
//   - AssertCanonical(t, l) - non-empty and starts at its minimum
//   - AssertTableTotal(t, table, want) - counts sum to want
//   - AssertSorted(t, entries) - count descending, then loop descending
package testutil
