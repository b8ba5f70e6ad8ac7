// Package paths provides centralized path handling for iacinit.
//
// It implements the XDG Base Directory specification for the few locations
// iacinit persists anything outside the generated project:
//
//   - Config: $XDG_CONFIG_HOME/iacinit/config.toml (user configuration)
//   - Data: $XDG_DATA_HOME/iacinit/templates (user template sets)
//   - State: $XDG_STATE_HOME/iacinit/iacinit.log (log file)
//
// # Environment Variables
//
//   - IACINIT_CONFIG_DIR: Override the config directory
//   - IACINIT_DATA_DIR: Override the data directory
//   - XDG_STATE_HOME: Read at call time, so tests can redirect the log file
package paths
