package main

import (
	"fmt"
	"os"

	"github.com/AllaVinner/dotman/cmd/dotman"
	"github.com/AllaVinner/dotman/pkg/ui/output/styles"
)

func main() {
	rootCmd := dotman.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
