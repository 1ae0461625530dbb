package microregex

// Config controls compile-time limits.
//
// Zero values disable the corresponding limit. Customize via:
//
//	config := microregex.DefaultConfig()
//	config.MaxStates = 256
//	re, err := microregex.CompileWithConfig(pattern, config)
type Config struct {
	// MaxStates caps the number of states in the compiled graph.
	// A pattern of n characters compiles to at most n+2 states, so this is
	// effectively a pattern length cap. 0 means unlimited.
	MaxStates int
}

// DefaultConfig returns the default compilation limits
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
	}
}
