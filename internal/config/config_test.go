package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	acsserrors "github.com/shawn-sandy/acss/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, `{
			"name": "demo",
			"preview": {"port": 5000},
			"theme": {"stylesheets": ["theme/index.css"]}
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Name != "demo" {
			t.Errorf("Name = %q", cfg.Name)
		}
		if cfg.Preview.Port != 5000 {
			t.Errorf("Port = %d", cfg.Preview.Port)
		}
		if cfg.Preview.Host != DefaultHost {
			t.Errorf("Host default not applied: %q", cfg.Preview.Host)
		}
		if cfg.Addr() != "localhost:5000" {
			t.Errorf("Addr = %q", cfg.Addr())
		}
		if cfg.Dir() != dir {
			t.Errorf("Dir = %q, want %q", cfg.Dir(), dir)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
		var e *acsserrors.Error
		if !stderrors.As(err, &e) || e.Code != "E100" {
			t.Errorf("err = %v, want E100", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, `{not json`)
		_, err := Load(path)
		var e *acsserrors.Error
		if !stderrors.As(err, &e) || e.Code != "E101" {
			t.Errorf("err = %v, want E101", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, `{"preview": {"port": 99999}}`)
		_, err := Load(path)
		var e *acsserrors.Error
		if !stderrors.As(err, &e) || e.Code != "E102" {
			t.Errorf("err = %v, want E102", err)
		}
	})
}

func TestFind(t *testing.T) {
	t.Run("walks up to parent", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `{"name": "up"}`)
		nested := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatal(err)
		}

		cfg, err := Find(nested)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Name != "up" {
			t.Errorf("Name = %q", cfg.Name)
		}
	})

	t.Run("defaults when absent", func(t *testing.T) {
		cfg, err := Find(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Preview.Port != DefaultPort {
			t.Errorf("Port = %d, want default", cfg.Preview.Port)
		}
	})
}

func TestOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"build": {"output": "public"}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir() != filepath.Join(dir, "public") {
		t.Errorf("OutputDir = %q", cfg.OutputDir())
	}
}
