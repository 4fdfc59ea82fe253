package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/resultmap/cmd/resultmap"
	"github.com/arthur-debert/resultmap/pkg/ui/styles"
)

func main() {
	rootCmd := resultmap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
