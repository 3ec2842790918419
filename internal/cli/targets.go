// internal/cli/targets.go
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gmodx/gmodbuild/pkg/manifest"
)

var targetsDirectory string

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List buildable cdylib targets",
	Long:  `List every cdylib target in the crate or workspace without building.`,
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().StringVarP(&targetsDirectory, "directory", "C", ".", "crate dir or workspace root")
}

func runTargets(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(targetsDirectory)
	if err != nil {
		return err
	}

	candidates, err := manifest.List(context.Background(), dir)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Println("No cdylib targets found.")
		return nil
	}

	fmt.Printf("cdylib targets:\n")
	for _, c := range candidates {
		fmt.Printf("  %s (lib: %s)\n", c.Dir, c.Lib)
	}
	return nil
}
