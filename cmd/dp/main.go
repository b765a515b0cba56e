package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dp/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := lipgloss.NewRenderer(os.Stderr).NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"})
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
