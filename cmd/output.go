package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typedrills/internal/config"
)

var banner = color.New(color.FgCyan, color.Bold).SprintfFunc()

// section prints the demo banner used across the drills.
func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", banner("━━━ %s ━━━", title))
}

func jsonOutput() bool { return viper.GetBool(config.OutputJSON) }

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
