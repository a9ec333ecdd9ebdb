package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("NUTRIBUDGET_API_BASE", "")
	t.Setenv("API_BASE", "")
	os.Unsetenv("NUTRIBUDGET_API_BASE")
	os.Unsetenv("API_BASE")
	SetDefaults()
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Base != "http://127.0.0.1:5000" {
		t.Errorf("API.Base = %q", cfg.API.Base)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("API.Timeout() = %s", cfg.API.Timeout())
	}
	if cfg.Animation.Duration() != 700*time.Millisecond {
		t.Errorf("Animation.Duration() = %s", cfg.Animation.Duration())
	}
	if cfg.History.Capacity != 20 {
		t.Errorf("History.Capacity = %d", cfg.History.Capacity)
	}
	f := cfg.Form.Fields()
	if f.Budget != "40" || f.People != "2" || f.Diet != "veg" || f.Goal != "balanced" {
		t.Errorf("unexpected form defaults %+v", f)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("defaults should validate, got %v", errs)
	}
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Base != Default().API.Base {
		t.Fatalf("expected default base, got %q", cfg.API.Base)
	}
}

func TestAPIBaseFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		expect string
	}{
		{"bare", map[string]string{"API_BASE": "http://plan.local:8080"}, "http://plan.local:8080"},
		{"prefixed", map[string]string{"NUTRIBUDGET_API_BASE": "https://api.example.com"}, "https://api.example.com"},
		{"prefixed wins", map[string]string{
			"API_BASE":             "http://bare.local",
			"NUTRIBUDGET_API_BASE": "http://prefixed.local",
		}, "http://prefixed.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.API.Base != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, cfg.API.Base)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base: https://plans.example.org
logging:
  level: debug
animation:
  duration_ms: 0
form:
  diet: vegan
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Base != "https://plans.example.org" {
		t.Errorf("API.Base = %q", cfg.API.Base)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Animation.DurationMs != 0 {
		t.Errorf("Animation.DurationMs = %d", cfg.Animation.DurationMs)
	}
	if cfg.Form.Diet != "vegan" || cfg.Form.Budget != "40" {
		t.Errorf("unexpected form %+v", cfg.Form)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad scheme", func(c *Config) { c.API.Base = "ftp://host" }, "api.base"},
		{"no host", func(c *Config) { c.API.Base = "http://" }, "api.base"},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }, "api.timeout_seconds"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"negative duration", func(c *Config) { c.Animation.DurationMs = -1 }, "animation.duration_ms"},
		{"zero frame", func(c *Config) { c.Animation.FrameMs = 0 }, "animation.frame_ms"},
		{"zero capacity", func(c *Config) { c.History.Capacity = 0 }, "history.capacity"},
		{"bad diet", func(c *Config) { c.Form.Diet = "carnivore" }, "form.diet"},
		{"bad goal", func(c *Config) { c.Form.Goal = "bulk" }, "form.goal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, errs[0].Field)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	resetViper(t)
	viper.Set("api.base", "not a url")
	viper.Set("history.capacity", 0)

	_, err := Load()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T %v", err, err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verrs))
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "nutribudget") {
		t.Fatalf("unexpected dir %q", got)
	}
	if got := ConfigFile(); got != filepath.Join("/tmp/xdg", "nutribudget", "config.yaml") {
		t.Fatalf("unexpected file %q", got)
	}
}
