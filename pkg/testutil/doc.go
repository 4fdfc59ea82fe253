// Package testutil provides helpers shared by resultmap tests.
//
// Key components:
//   - TestEnvironment: points XDG directories, the log file and RESULTMAP_*
//     variables at a temp directory so config discovery never sees the
//     developer's own files
//   - CreateFile / ReadFile: fixture files with automatic parent creation
//
// Usage guidelines:
//   - Call NewTestEnvironment before anything that loads configuration
//   - Define fixture content inline, not in external files
package testutil
