// Package harness provides utilities for integration testing the themeconv CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - THEMECONV_HOME: Isolated per test (settings file and history database)
//   - THEMECONV_SOURCE_DIR, THEMECONV_OUTPUT_DIR: Theme fixtures and outputs
//   - XDG_CONFIG_HOME: Keeps the default source directory inside the test tree
//   - ACCESSIBLE: Forces plain prompts instead of the TUI
package harness
