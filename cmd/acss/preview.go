package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shawn-sandy/acss/internal/config"
	"github.com/shawn-sandy/acss/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
		noReload    bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the gallery preview server",
		Long: `Start the component gallery server with live reload.

The server renders one sample per element variant plus the packaged
components, and refreshes connected browsers when a theme stylesheet
changes.

Examples:
  acss preview
  acss preview --port=8080
  acss preview --host=0.0.0.0 --no-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser, !noReload)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from acss.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from acss.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

func runPreview(port int, host string, openBrowser, liveReload bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Find(wd)
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if openBrowser {
		cfg.Preview.Open = true
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	server, err := preview.NewServer(preview.ServerOptions{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
		LiveReload: liveReload,
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
		server.Stop()
	}()

	if cfg.Preview.Open {
		go openURL("http://" + cfg.Addr())
	}

	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
