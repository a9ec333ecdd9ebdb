// NutriBudget: a budget grocery basket planner for the terminal.
//
// Usage:
//
//	nutribudget [--config file] [--verbose] [--quiet]
//	nutribudget plan [--budget n] [--people n] [--diet d] [--goal g] [--format text|json|yaml] [--export]
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/nutribudget/internal/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
