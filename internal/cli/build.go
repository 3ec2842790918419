// internal/cli/build.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gmodx/gmodbuild"
)

var (
	buildDirectory  string
	buildArch       int
	buildOutDir     string
	buildName       string
	buildRustFlags  string
	buildLinkArgs   string
	buildDev        bool
	buildToolchain  string
	buildWindowsGNU bool
	buildCompress   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and repackage the module",
	Long: `Build the crate (or the workspace's cdylib package) for the requested
target and copy the artifact into the output directory under the Garry's Mod
module naming convention.

Examples:
  gmodbuild build
  gmodbuild build -a 64 -o bin
  gmodbuild build -C path/to/workspace -n gmsv_mymodule
  gmodbuild build --windows-gnu -a 32 --link-args="-static-libgcc"`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildDirectory, "directory", "C", ".", "crate dir or workspace root")
	buildCmd.Flags().IntVarP(&buildArch, "arch", "a", 32, "target arch: 32 or 64")
	buildCmd.Flags().StringVarP(&buildOutDir, "outdir", "o", "bin", "output directory")
	buildCmd.Flags().StringVarP(&buildName, "name", "n", "", "override for final base name (defaults to [lib].name)")
	buildCmd.Flags().StringVar(&buildRustFlags, "rustflags", "", "extra RUSTFLAGS to append (space separated)")
	buildCmd.Flags().StringVar(&buildLinkArgs, "link-args", "", "extra linker args; appended as -C link-arg=<arg> each")
	buildCmd.Flags().BoolVarP(&buildDev, "dev", "d", false, "build in dev (non-release) mode")
	buildCmd.Flags().StringVarP(&buildToolchain, "toolchain", "t", "stable", "Rust toolchain (e.g. nightly, 1.81.0, stable-YYYY-MM-DD)")
	buildCmd.Flags().BoolVar(&buildWindowsGNU, "windows-gnu", false, "build Windows targets with the GNU toolchain")
	buildCmd.Flags().BoolVar(&buildCompress, "compress", false, "also write an xz-compressed copy of the module")
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts := buildOptions(cmd)

	result, err := gmodbuild.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", result.Output)
	fmt.Printf("  sri: %s\n", result.Checksum)
	if result.Archive != "" {
		fmt.Printf("  archive: %s\n", result.Archive)
	}
	return nil
}

// buildOptions merges the config file and flags: explicit flags win, then
// config file values, then flag defaults.
func buildOptions(cmd *cobra.Command) *gmodbuild.Options {
	opts := &gmodbuild.Options{
		Directory:  buildDirectory,
		Arch:       buildArch,
		OutDir:     buildOutDir,
		Name:       buildName,
		RustFlags:  buildRustFlags,
		LinkArgs:   buildLinkArgs,
		Dev:        buildDev,
		Toolchain:  buildToolchain,
		WindowsGNU: buildWindowsGNU,
		Compress:   buildCompress,
		Debug:      config.Debug,
	}

	flags := cmd.Flags()
	if !flags.Changed("toolchain") && config.Toolchain != "" {
		opts.Toolchain = config.Toolchain
	}
	if !flags.Changed("outdir") && config.OutDir != "" {
		opts.OutDir = config.OutDir
	}
	if !flags.Changed("arch") && config.Arch != 0 {
		opts.Arch = config.Arch
	}
	if !flags.Changed("windows-gnu") {
		opts.WindowsGNU = config.WindowsGNU
	}
	if !flags.Changed("compress") {
		opts.Compress = config.Compress
	}

	return opts
}
