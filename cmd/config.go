package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typedrills/internal/config"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the drills configuration",
	}

	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective value of every key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, config.Effective())
			}
			section(out, "Config")
			for _, k := range config.Keys() {
				f := config.Default[k]
				fmt.Fprintf(out, "  %-14s = %v\n", k, viper.Get(k))
				fmt.Fprintf(out, "  %-14s   env %s, %s\n", "", f.Env(), f.Description)
			}
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "write [path]",
		Short: "Write the factory defaults as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.Dir(), config.Name+".toml")
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Write(fs, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return c
}
