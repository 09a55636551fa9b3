package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shawn-sandy/acss/internal/config"
	"github.com/shawn-sandy/acss/internal/preview"
	"github.com/shawn-sandy/acss/pkg/ui"
)

func buildCmd() *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static gallery",
		Long: `Render the component gallery to static HTML.

The output directory contains index.html, one page per variant under
variant/, and the configured theme stylesheets.

Examples:
  acss build
  acss build --output=public --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, pretty)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "O", "", "Output directory (default from acss.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the generated HTML")

	return cmd
}

func runBuild(output string, pretty bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Find(wd)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}
	if pretty {
		cfg.Build.Pretty = true
	}

	start := time.Now()
	outDir := cfg.OutputDir()
	gallery := preview.NewGallery(cfg)

	if err := os.MkdirAll(filepath.Join(outDir, "variant"), 0755); err != nil {
		return err
	}

	index, err := gallery.IndexPage()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte(index), 0644); err != nil {
		return err
	}

	pages := 1
	for _, v := range ui.Variants() {
		page, err := gallery.VariantPage(string(v))
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, "variant", string(v)+".html")
		if err := os.WriteFile(path, []byte(page), 0644); err != nil {
			return err
		}
		pages++
	}

	for _, sheet := range cfg.Theme.Stylesheets {
		if err := copyFile(
			filepath.Join(cfg.Dir(), sheet),
			filepath.Join(outDir, "theme", sheet),
		); err != nil {
			errorMsg("stylesheet %s: %v", sheet, err)
			continue
		}
	}

	success("Built %d pages in %s", pages, time.Since(start).Round(time.Millisecond))
	info("Output: %s", outDir)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
