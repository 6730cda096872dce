// Package harness provides utilities for integration testing the bancada CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - BANCADA_HOME: isolated per test (temp directory)
//   - BANCADA_DEBUG: disabled to reduce noise
//   - BANCADA_EDITOR: set to a no-op command
package harness
