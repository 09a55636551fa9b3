package main

import (
	"fmt"

	"github.com/spf13/cobra"

	acsserr "github.com/shawn-sandy/acss/internal/errors"
)

func errorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors [code]",
		Short: "Explain error codes",
		Long: `List registered error codes, or explain one in detail.

Examples:
  acss errors         # list all codes
  acss errors E001    # explain the unknown variant error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, code := range acsserr.GetAllCodes() {
					t, _ := acsserr.GetTemplate(code)
					fmt.Printf("  %s  %s\n", code, t.Message)
				}
				return nil
			}

			code := args[0]
			if _, ok := acsserr.GetTemplate(code); !ok {
				errorMsg("Unknown error code %q", code)
				return nil
			}
			fmt.Print(acsserr.New(code).Format())
			return nil
		},
	}

	return cmd
}
