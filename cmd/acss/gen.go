package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/shawn-sandy/acss/internal/config"
	acsserr "github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/ui"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate component scaffolding.

Types:
  component   Generate a new component built on the element renderer

Examples:
  acss gen component Card               # components/card.go
  acss gen component Alert --as=aside   # aside-based component`,
	}

	cmd.AddCommand(genComponentCmd())

	return cmd
}

func genComponentCmd() *cobra.Command {
	var (
		outputDir string
		as        string
	)

	cmd := &cobra.Command{
		Use:   "component <name>",
		Short: "Generate a new component",
		Long: `Generate a new component file.

The generated component wraps the element renderer with the usual
option-function pattern. Components are placed in components/ by
default.

Examples:
  acss gen component Card
  acss gen component Alert --as=aside
  acss gen component Tag --as=span --output=pkg/widgets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenComponent(args[0], outputDir, as)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: components)")
	cmd.Flags().StringVar(&as, "as", "div", "Element variant the component renders as")

	return cmd
}

func runGenComponent(name, outputDir, as string) error {
	if !validComponentName(name) {
		return acsserr.New("E201").WithDetailf("%q is not a valid component name", name)
	}
	if _, err := ui.Resolve(ui.Variant(as)); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Find(wd)
	if err != nil {
		return err
	}

	if outputDir == "" {
		outputDir = filepath.Join(cfg.Dir(), "components")
	}
	fileName := strings.ToLower(name) + ".go"
	path := filepath.Join(outputDir, fileName)

	if _, err := os.Stat(path); err == nil {
		return acsserr.New("E200").WithDetailf("%s already exists", path)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	content := componentTemplate(name, as, filepath.Base(outputDir))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	success("Generated %s", path)
	info("Variant: %s", as)
	return nil
}

// validComponentName reports whether name is a legal Go-exported
// component name.
func validComponentName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func componentTemplate(name, as, pkg string) string {
	exported := strings.ToUpper(name[:1]) + name[1:]
	lower := strings.ToLower(name)

	return fmt.Sprintf(`package %s

import (
	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// %[2]sOption configures a %[2]s.
type %[2]sOption func(ui.Props)

// %[2]sClasses sets additional CSS classes.
func %[2]sClasses(classes string) %[2]sOption {
	return func(p ui.Props) {
		p[ui.KeyClasses] = classes
	}
}

// %[2]sStyles sets inline style overrides.
func %[2]sStyles(s ui.Styles) %[2]sOption {
	return func(p ui.Props) {
		p[ui.KeyStyles] = s
	}
}

// New%[2]s renders a %[3]s-based %[4]s element.
func New%[2]s(children []*vdom.VNode, opts ...%[2]sOption) *vdom.VNode {
	props := ui.Props{
		ui.KeyAs:      ui.Variant(%[5]q),
		ui.KeyClasses: "acss-%[4]s",
	}
	for _, opt := range opts {
		opt(props)
	}

	args := make([]any, 0, len(children))
	for _, child := range children {
		args = append(args, child)
	}
	return ui.MustRender(props, args...)
}
`, pkg, exported, as, lower, as)
}
