// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmodx/gmodbuild/pkg/core"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gmodbuild",
	Short: "Build Rust cdylib modules for Garry's Mod",
	Long: `gmodbuild - Garry's Mod Rust module builder

Cross-compiles a Rust cdylib crate and repackages the artifact into the
gmsv/gmcl naming convention the Garry's Mod binary-module loader expects
(e.g. mymodule_win32.dll, mymodule_linux64.dll).`,
	Version: "0.1.0",

	// Errors are reported once, by main, with the child exit code intact.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gmodbuild/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	if debug {
		config.Debug = true
	}
}
