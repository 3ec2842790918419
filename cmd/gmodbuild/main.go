// cmd/gmodbuild/main.go
package main

import (
	"fmt"
	"os"

	"github.com/gmodx/gmodbuild"
	"github.com/gmodx/gmodbuild/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(gmodbuild.ExitCode(err))
	}
}
