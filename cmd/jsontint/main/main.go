package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/jsontint/cmd/jsontint"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := jsontint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := sink.Style(lipgloss.NewRenderer(os.Stderr), theme.StyleSpec{Foreground: "red", Bold: true})
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
