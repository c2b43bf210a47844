package nfa

// DefaultMaxStates matches the 64-state ceiling of a single machine-word
// state-set. The bit-set representation grows past it, so the limit is purely
// a configured budget and can be raised per compilation.
const DefaultMaxStates = 64

// maxStatesLimit caps MaxStates so a hostile pattern cannot demand an
// arbitrarily large dense transition table.
const maxStatesLimit = 1 << 20

// Config controls NFA compilation.
type Config struct {
	// MaxStates is the maximum number of states Thompson construction may
	// allocate for one pattern. Exceeding it fails compilation with a
	// CapacityError. Default: DefaultMaxStates.
	MaxStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: DefaultMaxStates,
	}
}

// Validate checks if the configuration is valid.
// MaxStates must be between 2 (a single literal needs two states) and 2^20.
func (c Config) Validate() error {
	if c.MaxStates < 2 || c.MaxStates > maxStatesLimit {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must be between 2 and 1,048,576",
		}
	}
	return nil
}
