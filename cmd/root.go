// Package cmd implements the drills command line.
package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typedrills/internal/config"
	"github.com/marcodamonte/typedrills/internal/log"
)

// errUsage marks bad arguments, as opposed to failures while running.
var errUsage = errors.New("usage")

// fs is the filesystem config is read from and written to. Tests swap it.
var fs = afero.NewOsFs()

// NewRootCmd builds the full command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "drills",
		Short:         "Run the generics drills: Stack[T], FindByID, Response[T] and friends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Setup(fs, configFile); err != nil {
				return err
			}
			flags := cmd.Root().PersistentFlags()
			lo.Must0(viper.BindPFlag(config.OutputJSON, flags.Lookup("json")))
			lo.Must0(viper.BindPFlag(config.LogLevel, flags.Lookup("log-level")))
			if flags.Changed("no-color") {
				viper.Set(config.OutputColor, false)
			}

			log.Setup()
			if !viper.GetBool(config.OutputColor) {
				color.NoColor = true
			}
			log.Debugf("config loaded from %q", viper.ConfigFileUsed())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: "+config.Dir()+"/drills.toml)")
	root.PersistentFlags().Bool("json", false, "print results as JSON")
	root.PersistentFlags().Bool("no-color", false, "disable coloured banners")
	root.PersistentFlags().String("log-level", "warn", "log level (error, warn, info, debug)")

	root.AddCommand(
		newStackCmd(),
		newFindCmd(),
		newResponseCmd(),
		newFirstLastCmd(),
		newRecordsCmd(),
		newCalcCmd(),
		newConfigCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
