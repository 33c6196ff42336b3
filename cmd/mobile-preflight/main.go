package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrChecksFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "mobile-preflight",
	Short:         "Prerequisite checks for mobile automation",
	Long:          "mobile-preflight verifies that the Node.js, Android and iOS tooling needed for mobile device automation is installed.",
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}
