// Package config loads NutriBudget settings from defaults, an optional
// YAML file and the environment, through viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/nutribudget/internal/animate"
	"github.com/hammamikhairi/nutribudget/internal/form"
	"github.com/hammamikhairi/nutribudget/internal/planapi"
	"github.com/hammamikhairi/nutribudget/internal/storage"
)

// EnvPrefix namespaces environment overrides, e.g. NUTRIBUDGET_LOGGING_LEVEL.
const EnvPrefix = "NUTRIBUDGET"

// Config is the complete NutriBudget configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Export    ExportConfig    `mapstructure:"export"`
	Animation AnimationConfig `mapstructure:"animation"`
	History   HistoryConfig   `mapstructure:"history"`
	Form      FormConfig      `mapstructure:"form"`
}

// APIConfig locates the planning service.
type APIConfig struct {
	// Base is the service root; requests go to Base + "/api/plan".
	// Also read from NUTRIBUDGET_API_BASE or API_BASE.
	Base string `mapstructure:"base"`
	// TimeoutSeconds bounds one plan request (default: 30)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	// Level is "off", "info" or "debug" (default: "info")
	Level string `mapstructure:"level"`
	// File receives log output. Empty means stderr, which the dashboard
	// avoids because it owns the terminal.
	File string `mapstructure:"file"`
}

// ExportConfig controls shopping list exports.
type ExportConfig struct {
	// Dir is where shopping lists are written (default: working directory)
	Dir string `mapstructure:"dir"`
}

// AnimationConfig tunes the totals animation.
type AnimationConfig struct {
	// DurationMs is the length of one animation; 0 jumps straight to the
	// new values (default: 700)
	DurationMs int `mapstructure:"duration_ms"`
	// FrameMs is the delay between frames (default: 16)
	FrameMs int `mapstructure:"frame_ms"`
}

// HistoryConfig bounds the in-session plan history.
type HistoryConfig struct {
	// Capacity is how many plans the session keeps (default: 20)
	Capacity int `mapstructure:"capacity"`
}

// FormConfig seeds the dashboard form.
type FormConfig struct {
	Budget string `mapstructure:"budget"`
	People string `mapstructure:"people"`
	Diet   string `mapstructure:"diet"`
	Goal   string `mapstructure:"goal"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Base:           planapi.DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(".nutribudget", "nutribudget.log"),
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Animation: AnimationConfig{
			DurationMs: int(animate.DefaultDuration / time.Millisecond),
			FrameMs:    int(animate.DefaultFrameInterval / time.Millisecond),
		},
		History: HistoryConfig{
			Capacity: storage.DefaultCapacity,
		},
		Form: FormConfig{
			Budget: form.DefaultBudget,
			People: form.DefaultPeople,
			Diet:   string(form.DefaultDiet),
			Goal:   string(form.DefaultGoal),
		},
	}
}

// Timeout returns the request timeout.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Duration returns the animation length.
func (c *AnimationConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// FrameInterval returns the delay between frames.
func (c *AnimationConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// Fields returns the form seed values.
func (c *FormConfig) Fields() form.Fields {
	return form.Fields{Budget: c.Budget, People: c.People, Diet: c.Diet, Goal: c.Goal}
}

// SetDefaults registers every default with viper and binds the API base
// to its environment variables.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base", defaults.API.Base)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	viper.SetDefault("export.dir", defaults.Export.Dir)

	viper.SetDefault("animation.duration_ms", defaults.Animation.DurationMs)
	viper.SetDefault("animation.frame_ms", defaults.Animation.FrameMs)

	viper.SetDefault("history.capacity", defaults.History.Capacity)

	viper.SetDefault("form.budget", defaults.Form.Budget)
	viper.SetDefault("form.people", defaults.Form.People)
	viper.SetDefault("form.diet", defaults.Form.Diet)
	viper.SetDefault("form.goal", defaults.Form.Goal)

	// The prefixed name wins over the bare API_BASE used by the web app.
	_ = viper.BindEnv("api.base", EnvPrefix+"_API_BASE", "API_BASE")
}

// Load reads the configuration from viper into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nutribudget")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nutribudget"
	}
	return filepath.Join(home, ".config", "nutribudget")
}

// ConfigFile returns the path to the default config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
