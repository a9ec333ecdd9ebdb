// Package cmd holds the nutribudget command line: the interactive
// dashboard on the root command and a headless plan command.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/nutribudget/internal/config"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "nutribudget",
	Short: "Budget grocery basket planner",
	Long: `NutriBudget asks the planning service for a grocery basket that fits a
budget, household size, diet and nutrition goal, and shows the result as
an animated dashboard with breakdown charts, meal ideas and an exportable
shopping list.

Without a subcommand it starts the interactive dashboard.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/nutribudget/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose/debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "disable all logging")
	flags.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	flags.String("api-base", "", "planning service base URL")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("logging.file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("api.base", flags.Lookup("api-base"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// NUTRIBUDGET_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}
