// Package config handles configuration management for iacinit.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user config file ($XDG_CONFIG_HOME/iacinit/config.toml), if present
//  3. An explicit file passed with --config, which must exist
//  4. IACINIT_<SECTION>_<KEY> environment variables
//
// Arrays are replaced, not appended, when a later layer sets them.
package config
