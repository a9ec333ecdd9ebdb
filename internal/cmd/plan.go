package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/nutribudget/internal/config"
	"github.com/hammamikhairi/nutribudget/internal/engine"
	"github.com/hammamikhairi/nutribudget/internal/export"
	"github.com/hammamikhairi/nutribudget/internal/form"
	"github.com/hammamikhairi/nutribudget/internal/storage"
)

var (
	planBudget string
	planPeople string
	planDiet   string
	planGoal   string
	planFormat string
	planExport bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate one plan and print it",
	Long: `Generate one plan without the dashboard and print it to stdout.

Unset flags fall back to the form defaults from the config file, e.g.:
  nutribudget plan --budget 60 --people 3 --diet vegan
  nutribudget plan --goal high_protein --format json
  nutribudget plan --export`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planBudget, "budget", "b", "", "budget in dollars")
	planCmd.Flags().StringVarP(&planPeople, "people", "p", "", "number of people")
	planCmd.Flags().StringVarP(&planDiet, "diet", "d", "", "diet: veg, non_veg or vegan")
	planCmd.Flags().StringVarP(&planGoal, "goal", "g", "", "goal: balanced, high_protein or low_sugar")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", formatText, "output format: text, json or yaml")
	planCmd.Flags().BoolVar(&planExport, "export", false, "also save the shopping list")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if !validFormat(planFormat) {
		return fmt.Errorf("unknown format %q (want text, json or yaml)", planFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closeLog := setupLogger(cfg.Logging)
	defer closeLog()

	f := form.New()
	if err := f.Apply(cfg.Form.Fields()); err != nil {
		return fmt.Errorf("form defaults: %w", err)
	}
	if err := f.Apply(form.Fields{Budget: planBudget, People: planPeople, Diet: planDiet, Goal: planGoal}); err != nil {
		return err
	}

	store := storage.NewMemoryStore(log.Named("store"), cfg.History.Capacity)
	eng := engine.New(newPlanner(cfg, log), store, log.Named("engine"))

	state := eng.Submit(cmd.Context(), f.Request())
	if state.Plan == nil {
		return errors.New(state.Message)
	}

	if err := writePlan(cmd.OutOrStdout(), state.Plan, planFormat); err != nil {
		return err
	}

	if planExport {
		exporter := export.NewExporter(afero.NewOsFs(), cfg.Export.Dir, log.Named("export"))
		path, err := exporter.Export(state.Plan)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved shopping list to %s\n", path)
	}
	return nil
}
