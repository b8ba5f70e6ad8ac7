package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// embeddedDefaults is the koanf provider for the first config layer
type embeddedDefaults struct{}

func (embeddedDefaults) ReadBytes() ([]byte, error) { return defaultConfig, nil }

// Read is never called: the defaults are always loaded with the toml parser
func (embeddedDefaults) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded defaults need the toml parser")
}
