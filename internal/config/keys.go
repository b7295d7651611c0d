package config

// Configuration keys. Nested TOML tables map to dotted keys.
const (
	LogLevel     = "log.level"
	LogJSON      = "log.json"
	OutputJSON   = "output.json"
	OutputColor  = "output.color"
	StackDefault = "stack.default"
)
