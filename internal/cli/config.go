package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config selects the coefficient domain polycalc works in.
type Config struct {
	// Ring is one of int, float, rat, mod or bls12-377.
	Ring string `toml:"ring" yaml:"ring"`
	// Modulus of the prime field used by the "mod" ring.
	Modulus uint64 `toml:"modulus" yaml:"modulus"`
}

const (
	defaultRing    = "rat"
	defaultModulus = 65537
)

// configEnv names a config file used when --config is not given.
const configEnv = "POLYCALC_CONFIG"

var errUnknownConfigFormat = errors.New("unknown config file format")

func DefaultConfig() Config {
	return Config{Ring: defaultRing, Modulus: defaultModulus}
}

// LoadConfig reads a TOML or YAML file (chosen by extension) on top of the
// defaults. Keys absent from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	path = os.ExpandEnv(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", errUnknownConfigFormat, path)
	}

	return cfg, nil
}
