// Package integration_tests compiles documents end to end through the app,
// from files on disk to the rendered program.
package integration_tests
