package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/denix666/space-invaders/pkg/embedded"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  title: "Invaders"
  width: 700
  height: 550
  scale: 2
tps: 60
legacySweep: true
terminal:
  tps: 20
  cellWidth: 10
  cellHeight: 20
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Title != "Invaders" {
					t.Errorf("expected title Invaders, got %q", cfg.Window.Title)
				}
				if cfg.Window.Scale != 2 {
					t.Errorf("expected scale 2, got %v", cfg.Window.Scale)
				}
				if !cfg.LegacySweep {
					t.Error("expected legacySweep = true")
				}
				if cfg.Terminal.TPS != 20 {
					t.Errorf("expected terminal tps 20, got %d", cfg.Terminal.TPS)
				}
			},
		},
		{
			name:        "empty document uses defaults",
			yamlContent: "",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.TPS != 60 {
					t.Errorf("expected default tps 60, got %d", cfg.TPS)
				}
				if cfg.LegacySweep {
					t.Error("expected legacySweep default false")
				}
				if cfg.Terminal.RepeatDelayMs != 500 {
					t.Errorf("expected default repeatDelayMs 500, got %d", cfg.Terminal.RepeatDelayMs)
				}
			},
		},
		{
			name: "wrong window size",
			yamlContent: `
window:
  title: "Invaders"
  width: 800
  height: 600
`,
			wantErr:     true,
			errContains: "window size must be 700x550",
		},
		{
			name:        "zero tps",
			yamlContent: "tps: 0\n",
			wantErr:     true,
			errContains: "tps must be >= 1",
		},
		{
			name: "bad terminal cell",
			yamlContent: `
terminal:
  tps: 30
  cellWidth: 0
  cellHeight: 20
`,
			wantErr:     true,
			errContains: "terminal cell size must be positive",
		},
		{
			name: "negative repeat delay",
			yamlContent: `
terminal:
  repeatDelayMs: -1
`,
			wantErr:     true,
			errContains: "terminal.repeatDelayMs must be >= 0",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [\n",
			wantErr:     true,
			errContains: "failed to parse game config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	t.Run("bundled config", func(t *testing.T) {
		cfg, err := LoadGameConfig("../../" + GameConfigPath)
		if err != nil {
			t.Fatalf("failed to load bundled config: %v", err)
		}
		if cfg.Window.Width != GameWindowWidth || cfg.Window.Height != GameWindowHeight {
			t.Errorf("unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
		}
	})

	t.Run("file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		if err := os.WriteFile(path, []byte("verbose: true\n"), 0644); err != nil {
			t.Fatalf("failed to write temp config: %v", err)
		}
		cfg, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Verbose {
			t.Error("expected verbose = true")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read game config file") {
			t.Errorf("expected read error, got %v", err)
		}
	})
}

func TestResolveGameConfig(t *testing.T) {
	data, err := os.ReadFile("../../" + GameConfigPath)
	if err != nil {
		t.Fatalf("failed to read bundled config: %v", err)
	}
	embedded.Init(fstest.MapFS{GameConfigPath: &fstest.MapFile{Data: data}})

	cfg, err := ResolveGameConfig("")
	if err != nil {
		t.Fatalf("bundled config should be valid: %v", err)
	}
	if cfg.Window.Width != GameWindowWidth || cfg.Window.Height != GameWindowHeight {
		t.Errorf("unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	override := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(override, []byte("tps: 30\n"), 0o644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}
	cfg, err = ResolveGameConfig(override)
	if err != nil {
		t.Fatalf("override should load: %v", err)
	}
	if cfg.TPS != 30 {
		t.Errorf("expected tps 30 from override, got %d", cfg.TPS)
	}

	if _, err := ResolveGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing override file")
	}
}
