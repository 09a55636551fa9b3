package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	acsserr "github.com/shawn-sandy/acss/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌─┐┌─┐
  ├─┤│  └─┐└─┐
  ┴ ┴└─┘└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "acss",
		Short: "Polymorphic UI component kit for Go",
		Long: `acss renders a component kit of polymorphic HTML elements.

Every element starts from a single renderer: pick a variant tag,
pass a property bag, and get validated, deterministic markup.

  • Closed variant set with per-tag capability tables
  • Style and class merging with strict conflict detection
  • Live-reload gallery server for theme development
  • Static builds published to disk or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		buildCmd(),
		genCmd(),
		publishCmd(),
		errorsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var e *acsserr.Error
		if errors.As(err, &e) {
			acsserr.PrintError(e)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the acss ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
