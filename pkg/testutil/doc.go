// Package testutil provides helpers shared by physq tests.
//
// Key components:
//   - MemFs: in-memory filesystem seeded from a path to content map
//   - IsolateEnv: hides PHYSQ_* variables of the developer's shell
//
// Usage guidelines:
//   - Config, unit definition and topic files live in a MemFs, never on disk
//   - All test data should be defined inline, not in external files
package testutil
