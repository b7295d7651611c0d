package config

import (
	"fmt"
	"sort"
	"strings"
)

// Field describes one configuration key and its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(EnvPrefix + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f Field) String() string {
	return fmt.Sprintf("%s = %v (%s)", f.Key, f.Value, f.Description)
}

// Default holds every known field by key.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(LogLevel, "warn", "Log level: panic, fatal, error, warn, info, debug, trace")
	register(LogJSON, false, "Write logs as JSON")
	register(OutputJSON, false, "Print command results as JSON")
	register(OutputColor, true, "Colour section banners")
	register(StackDefault, []string{"1", "2", "3"}, "Items pushed by `drills stack` when none are given")
}

// Keys returns the registered keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(Default))
	for k := range Default {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
