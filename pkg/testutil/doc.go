// Package testutil provides utilities for testing gen-remix components.
//
// Key components:
//   - NewTestFS: in-memory filesystem behind types.FS
//   - TestProject: declarative builder for a project directory holding a
//     node_modules tree and a gen-remix configuration file
//
// All test data should be defined inline, not in external files.
package testutil
