// internal/cli/clean.go
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gmodx/gmodbuild/pkg/cargo"
	"github.com/gmodx/gmodbuild/pkg/manifest"
)

var cleanDirectory string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cargo build artifacts",
	Long:  `Run cargo clean in the resolved package directory.`,
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanDirectory, "directory", "C", ".", "crate dir or workspace root")
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir, err := filepath.Abs(cleanDirectory)
	if err != nil {
		return err
	}

	cand, err := manifest.Inspect(ctx, dir)
	if err != nil {
		return err
	}

	if err := cargo.Clean(ctx, cand.Dir); err != nil {
		return err
	}

	fmt.Printf("✓ Cleaned %s\n", cand.Dir)
	return nil
}
