package graph

// Config controls how inspectors traverse and filter source files
type Config struct {
	SkipTests bool
	Recursive bool
}

// DefaultConfig returns the inspector defaults
func DefaultConfig() *Config {
	return &Config{
		SkipTests: false,
		Recursive: true,
	}
}
